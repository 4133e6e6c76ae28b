package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/internal/core/ports/mocks"
	"aura-bank-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountTestDeps struct {
	svc         *AccountServiceImpl
	accountRepo *mocks.MockAccountRepository
	cardRepo    *mocks.MockCardRepository
	txRepo      *mocks.MockTransactionRepository
	idempRepo   *mocks.MockIdempotencyRepository
	idempCache  *mocks.MockIdempotencyCache
	ledger      *mocks.MockLedgerEngine
	events      *mocks.MockEventPublisher
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		cardRepo:    mocks.NewMockCardRepository(ctrl),
		txRepo:      mocks.NewMockTransactionRepository(ctrl),
		idempRepo:   mocks.NewMockIdempotencyRepository(ctrl),
		idempCache:  mocks.NewMockIdempotencyCache(ctrl),
		ledger:      mocks.NewMockLedgerEngine(ctrl),
		events:      mocks.NewMockEventPublisher(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAccountService(
		d.accountRepo, d.cardRepo, d.txRepo, d.idempRepo, d.idempCache,
		d.ledger, d.events, d.transactor, zerolog.Nop(),
	)
	return d
}

func TestAccountService_OpenAccount(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	var created *domain.Account
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Account) error {
			created = a
			return nil
		})

	account, err := d.svc.OpenAccount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, created, account)
	assert.Equal(t, userID, account.UserID)
	assert.True(t, account.Active)
	assert.True(t, account.Balance.IsZero())
	assert.Regexp(t, `^ACC-[0-9A-F]{8}$`, account.AccountNumber)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.accountRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := d.svc.GetAccount(ctx, id)
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
}

func TestAccountService_Deposit_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	amount := decimal.RequireFromString("100.00")
	idempKey := domain.BuildIdempotencyKey(accountID, "deposit", "dep-1")
	ledgerResult := &domain.LedgerResult{TransactionID: uuid.New(), Verified: true}

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.txRepo.EXPECT().GetByAccountAndReference(ctx, accountID, "dep-1").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(activeAccount(accountID, "0.00"), nil)
	d.ledger.EXPECT().RecordDeposit(ctx, tx, accountID, amount, "Cash deposit").Return(ledgerResult, nil)
	d.accountRepo.EXPECT().ApplyBalanceDelta(ctx, tx, accountID, amount).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempCache.EXPECT().Set(ctx, idempKey, gomock.Any(), domain.IdempotencyTTL).Return(nil)
	d.events.EXPECT().PublishTransferCompleted(ctx, gomock.Any())

	outcome, err := d.svc.Deposit(ctx, accountID, amount, "dep-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindDeposit, outcome.Transaction.Kind)
	assert.False(t, outcome.Replayed)
}

func TestAccountService_Deposit_SynthesizesMissingKey(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	amount := decimal.RequireFromString("100.00")
	ledgerResult := &domain.LedgerResult{TransactionID: uuid.New(), Verified: true}

	// No client key: one is generated, so every layer sees a fresh value
	// and the movement executes instead of failing validation.
	d.idempCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.txRepo.EXPECT().GetByAccountAndReference(ctx, accountID, gomock.Any()).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(activeAccount(accountID, "0.00"), nil)
	d.ledger.EXPECT().RecordDeposit(ctx, tx, accountID, amount, "Cash deposit").Return(ledgerResult, nil)
	d.accountRepo.EXPECT().ApplyBalanceDelta(ctx, tx, accountID, amount).Return(nil)

	var record *domain.TransactionRecord
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, rec *domain.TransactionRecord) error {
			record = rec
			return nil
		})
	d.idempRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), domain.IdempotencyTTL).Return(nil)
	d.events.EXPECT().PublishTransferCompleted(ctx, gomock.Any())

	outcome, err := d.svc.Deposit(ctx, accountID, amount, "")
	require.NoError(t, err)
	assert.False(t, outcome.Replayed)
	require.NotNil(t, record)
	require.NotNil(t, record.ReferenceID)
	assert.True(t, domain.ValidIdempotencyKey(*record.ReferenceID))
}

func TestAccountService_Deposit_ReplaysFromDurableLog(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	amount := decimal.RequireFromString("100.00")
	idempKey := domain.BuildIdempotencyKey(accountID, "deposit", "dep-1")

	record := &domain.TransactionRecord{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      domain.TransactionKindDeposit,
		Amount:    amount,
	}
	stored, err := buildIdempotencyRecord(idempKey,
		&ports.TransferOutcome{Transaction: record}, time.Now().UTC().Add(-5*time.Minute))
	require.NoError(t, err)

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(stored, nil)

	outcome, err := d.svc.Deposit(ctx, accountID, amount, "dep-1")
	require.NoError(t, err)
	assert.True(t, outcome.Replayed)
	assert.True(t, stored.CreatedAt.Equal(outcome.OriginalTimestamp))
	assert.Equal(t, record.ID, outcome.Transaction.ID)
}

func TestAccountService_Withdraw_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	amount := decimal.RequireFromString("40.00")
	idempKey := domain.BuildIdempotencyKey(accountID, "withdraw", "wd-1")
	ledgerResult := &domain.LedgerResult{TransactionID: uuid.New(), Verified: true}

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.txRepo.EXPECT().GetByAccountAndReference(ctx, accountID, "wd-1").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(activeAccount(accountID, "100.00"), nil)
	d.cardRepo.EXPECT().GetByAccountID(ctx, accountID).Return(nil, nil)
	d.ledger.EXPECT().RecordWithdrawal(ctx, tx, accountID, amount, "Cash withdrawal").Return(ledgerResult, nil)
	d.accountRepo.EXPECT().ApplyBalanceDelta(ctx, tx, accountID, amount.Neg()).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempCache.EXPECT().Set(ctx, idempKey, gomock.Any(), domain.IdempotencyTTL).Return(nil)
	d.events.EXPECT().PublishTransferCompleted(ctx, gomock.Any())

	outcome, err := d.svc.Withdraw(ctx, accountID, amount, "", "wd-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindWithdrawal, outcome.Transaction.Kind)
}

func TestAccountService_Withdraw_InsufficientFunds(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	amount := decimal.RequireFromString("40.00")
	idempKey := domain.BuildIdempotencyKey(accountID, "withdraw", "wd-1")

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.txRepo.EXPECT().GetByAccountAndReference(ctx, accountID, "wd-1").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(activeAccount(accountID, "10.00"), nil)

	_, err := d.svc.Withdraw(ctx, accountID, amount, "", "wd-1")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_002", appErr.Code)
}

func TestAccountService_Withdraw_InactiveAccount(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	idempKey := domain.BuildIdempotencyKey(accountID, "withdraw", "wd-1")

	inactive := activeAccount(accountID, "100.00")
	inactive.Active = false

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.txRepo.EXPECT().GetByAccountAndReference(ctx, accountID, "wd-1").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(inactive, nil)

	_, err := d.svc.Withdraw(ctx, accountID, decimal.RequireFromString("40.00"), "", "wd-1")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_007", appErr.Code)
}

func TestAccountService_ChargeFee_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	amount := decimal.RequireFromString("2.50")
	ledgerResult := &domain.LedgerResult{TransactionID: uuid.New(), Verified: true}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(activeAccount(accountID, "50.00"), nil)
	d.ledger.EXPECT().RecordFee(ctx, tx, accountID, amount, "Monthly maintenance fee").Return(ledgerResult, nil)
	d.accountRepo.EXPECT().ApplyBalanceDelta(ctx, tx, accountID, amount.Neg()).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	outcome, err := d.svc.ChargeFee(ctx, accountID, amount, "Monthly maintenance fee")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindFee, outcome.Transaction.Kind)
}

func TestAccountService_History_ClampsPagination(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	// limit 0 and negative offset both fall back to defaults
	d.txRepo.EXPECT().ListByAccount(ctx, accountID, 50, 0).Return([]domain.TransactionRecord{}, nil)

	_, err := d.svc.History(ctx, accountID, 0, -3)
	require.NoError(t, err)

	d.txRepo.EXPECT().ListByAccount(ctx, accountID, 25, 10).Return([]domain.TransactionRecord{}, nil)
	_, err = d.svc.History(ctx, accountID, 25, 10)
	require.NoError(t, err)
}

func TestAccountService_History_DBError(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	d.txRepo.EXPECT().ListByAccount(ctx, accountID, 50, 0).Return(nil, errors.New("connection reset"))

	_, err := d.svc.History(ctx, accountID, 50, 0)
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)
}
