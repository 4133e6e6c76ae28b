package service

import (
	"context"
	"testing"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports/mocks"
	"aura-bank-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	ledgerRepo *mocks.MockLedgerRepository
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(d.ledgerRepo, zerolog.Nop())
	return d
}

func userLedgerAccount(referenceID uuid.UUID) *domain.LedgerAccount {
	return &domain.LedgerAccount{
		ID:          uuid.New(),
		AccountType: domain.LedgerAccountTypeUser,
		ReferenceID: &referenceID,
		Name:        "User Account",
	}
}

// expectBalancedVerification wires the in-transaction sum check for a group
// with the given total on each side.
func expectBalancedVerification(d *ledgerTestDeps, tx *mockTx, total decimal.Decimal, count int) {
	d.ledgerRepo.EXPECT().
		SumsByTransactionTx(gomock.Any(), tx, gomock.Any()).
		Return(total, total, count, nil)
}

func TestLedgerService_RecordTransfer(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	fromID, toID := uuid.New(), uuid.New()
	fromLedger, toLedger := userLedgerAccount(fromID), userLedgerAccount(toID)
	amount := decimal.RequireFromString("50.00")

	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, fromID).Return(fromLedger, nil)
	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, toID).Return(toLedger, nil)

	var written []domain.LedgerEntry
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, e *domain.LedgerEntry) error {
			written = append(written, *e)
			return nil
		}).Times(2)
	expectBalancedVerification(d, tx, amount, 2)

	result, err := d.svc.RecordTransfer(ctx, tx, fromID, toID, amount, "lunch")
	require.NoError(t, err)
	require.Len(t, written, 2)

	// Sender credited, receiver debited; both legs share one group id.
	assert.Equal(t, fromLedger.ID, written[0].LedgerAccountID)
	assert.Equal(t, domain.EntryTypeCredit, written[0].EntryType)
	assert.Equal(t, toLedger.ID, written[1].LedgerAccountID)
	assert.Equal(t, domain.EntryTypeDebit, written[1].EntryType)
	assert.Equal(t, written[0].TransactionID, written[1].TransactionID)
	assert.Equal(t, result.TransactionID, written[0].TransactionID)
	assert.Equal(t, domain.EntryRefTransfer, written[0].ReferenceType)
	assert.True(t, result.Verified)
	assert.True(t, result.TotalDebits.Equal(amount))
	assert.True(t, result.TotalCredits.Equal(amount))
}

func TestLedgerService_RecordDeposit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	accountID := uuid.New()
	user := userLedgerAccount(accountID)
	amount := decimal.RequireFromString("100.00")

	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, accountID).Return(user, nil)

	var written []domain.LedgerEntry
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, e *domain.LedgerEntry) error {
			written = append(written, *e)
			return nil
		}).Times(2)
	expectBalancedVerification(d, tx, amount, 2)

	_, err := d.svc.RecordDeposit(ctx, tx, accountID, amount, "Cash deposit")
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, user.ID, written[0].LedgerAccountID)
	assert.Equal(t, domain.EntryTypeDebit, written[0].EntryType)
	assert.Equal(t, domain.SystemCashReserveID, written[1].LedgerAccountID)
	assert.Equal(t, domain.EntryTypeCredit, written[1].EntryType)
}

func TestLedgerService_RecordFee(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	accountID := uuid.New()
	user := userLedgerAccount(accountID)
	amount := decimal.RequireFromString("2.50")

	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, accountID).Return(user, nil)

	var written []domain.LedgerEntry
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, e *domain.LedgerEntry) error {
			written = append(written, *e)
			return nil
		}).Times(2)
	expectBalancedVerification(d, tx, amount, 2)

	_, err := d.svc.RecordFee(ctx, tx, accountID, amount, "Monthly maintenance fee")
	require.NoError(t, err)
	assert.Equal(t, domain.SystemFeesID, written[1].LedgerAccountID)
	assert.Equal(t, domain.EntryTypeDebit, written[1].EntryType)
}

func TestLedgerService_RecordTransfer_RejectsNonPositiveAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	fromID, toID := uuid.New(), uuid.New()

	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, fromID).Return(userLedgerAccount(fromID), nil)
	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, toID).Return(userLedgerAccount(toID), nil)

	_, err := d.svc.RecordTransfer(ctx, tx, fromID, toID, decimal.Zero, "noop")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestLedgerService_Post_UnbalancedFailsVerification(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	accountID := uuid.New()
	amount := decimal.RequireFromString("100.00")

	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, accountID).Return(userLedgerAccount(accountID), nil)
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).Return(nil).Times(2)
	// Re-read disagrees with what was written: a missing credit leg.
	d.ledgerRepo.EXPECT().
		SumsByTransactionTx(ctx, tx, gomock.Any()).
		Return(amount, decimal.Zero, 1, nil)

	_, err := d.svc.RecordDeposit(ctx, tx, accountID, amount, "Cash deposit")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_900", appErr.Code)
}

func TestLedgerService_Reverse(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	originalTxID := uuid.New()
	amount := decimal.RequireFromString("75.00")
	senderLedgerID, receiverLedgerID := uuid.New(), uuid.New()

	originals := []domain.LedgerEntry{
		{ID: uuid.New(), TransactionID: originalTxID, LedgerAccountID: senderLedgerID, EntryType: domain.EntryTypeCredit, Amount: amount, Currency: "USD"},
		{ID: uuid.New(), TransactionID: originalTxID, LedgerAccountID: receiverLedgerID, EntryType: domain.EntryTypeDebit, Amount: amount, Currency: "USD"},
	}

	d.ledgerRepo.EXPECT().GetEntriesByTransaction(ctx, originalTxID).Return(originals, nil)

	var written []domain.LedgerEntry
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, e *domain.LedgerEntry) error {
			written = append(written, *e)
			return nil
		}).Times(2)
	d.ledgerRepo.EXPECT().MarkReversed(ctx, tx, originalTxID, gomock.Any()).Return(nil)
	expectBalancedVerification(d, tx, amount, 2)

	result, err := d.svc.Reverse(ctx, tx, originalTxID, "fraud dispute")
	require.NoError(t, err)
	require.Len(t, written, 2)

	// Each leg flips type, keeps the amount, lands in a fresh group.
	assert.Equal(t, domain.EntryTypeDebit, written[0].EntryType)
	assert.Equal(t, senderLedgerID, written[0].LedgerAccountID)
	assert.Equal(t, domain.EntryTypeCredit, written[1].EntryType)
	assert.Equal(t, receiverLedgerID, written[1].LedgerAccountID)
	assert.NotEqual(t, originalTxID, result.TransactionID)
	assert.Contains(t, written[0].Description, "fraud dispute")
	assert.Contains(t, written[0].Description, originalTxID.String())
	assert.Equal(t, domain.EntryRefReversal, written[0].ReferenceType)
	require.NotNil(t, written[0].ReferenceID)
	assert.Equal(t, originalTxID, *written[0].ReferenceID)
	assert.True(t, result.Verified)
}

func TestLedgerService_Reverse_AlreadyReversed(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	originalTxID := uuid.New()

	d.ledgerRepo.EXPECT().GetEntriesByTransaction(ctx, originalTxID).Return([]domain.LedgerEntry{
		{ID: uuid.New(), TransactionID: originalTxID, EntryType: domain.EntryTypeDebit, Amount: decimal.New(10, 0), IsReversed: true},
	}, nil)

	_, err := d.svc.Reverse(ctx, tx, originalTxID, "again")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_005", appErr.Code)
}

func TestLedgerService_Reverse_UnknownTransaction(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	unknown := uuid.New()

	d.ledgerRepo.EXPECT().GetEntriesByTransaction(ctx, unknown).Return(nil, nil)

	_, err := d.svc.Reverse(ctx, tx, unknown, "nothing here")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
}

func TestLedgerService_VerifyTransaction(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	txID := uuid.New()
	before := time.Now().UTC()

	d.ledgerRepo.EXPECT().
		SumsByTransactionTx(ctx, tx, txID).
		Return(decimal.RequireFromString("50.00"), decimal.RequireFromString("50.00"), 2, nil)

	v, err := d.svc.VerifyTransaction(ctx, tx, txID)
	require.NoError(t, err)
	assert.True(t, v.IsBalanced)
	assert.Equal(t, 2, v.EntryCount)
	assert.True(t, v.Difference.IsZero())
	assert.False(t, v.CheckedAt.Before(before))
}
