package service

import (
	"context"
	"testing"

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

type verifierTestDeps struct {
	svc         *VerifierServiceImpl
	accountRepo *mocks.MockAccountRepository
	ledgerRepo  *mocks.MockLedgerRepository
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupVerifierService(t *testing.T) *verifierTestDeps {
	ctrl := gomock.NewController(t)
	d := &verifierTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewVerifierService(d.accountRepo, d.ledgerRepo, d.transactor, zerolog.Nop())
	return d
}

func TestVerifierService_VerifyTransaction_Balanced(t *testing.T) {
	d := setupVerifierService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	total := decimal.RequireFromString("50.00")

	d.ledgerRepo.EXPECT().SumsByTransaction(ctx, txID).Return(total, total, 2, nil)

	v, err := d.svc.VerifyTransaction(ctx, txID)
	require.NoError(t, err)
	assert.True(t, v.IsBalanced)
	assert.Equal(t, 2, v.EntryCount)
	require.NotNil(t, v.TransactionID)
	assert.Equal(t, txID, *v.TransactionID)
}

func TestVerifierService_VerifyTransaction_Unbalanced(t *testing.T) {
	d := setupVerifierService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()

	d.ledgerRepo.EXPECT().SumsByTransaction(ctx, txID).
		Return(decimal.RequireFromString("50.00"), decimal.RequireFromString("49.00"), 2, nil)

	v, err := d.svc.VerifyTransaction(ctx, txID)
	require.NoError(t, err)
	assert.False(t, v.IsBalanced)
	assert.True(t, v.Difference.Equal(decimal.RequireFromString("1.00")))
}

func TestVerifierService_VerifyTransaction_Unknown(t *testing.T) {
	d := setupVerifierService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()

	d.ledgerRepo.EXPECT().SumsByTransaction(ctx, txID).Return(decimal.Zero, decimal.Zero, 0, nil)

	_, err := d.svc.VerifyTransaction(ctx, txID)
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
}

func TestVerifierService_VerifyGlobal(t *testing.T) {
	d := setupVerifierService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	total := decimal.RequireFromString("123456.78")

	d.ledgerRepo.EXPECT().GlobalSums(ctx).Return(total, total, 420, nil)

	v, err := d.svc.VerifyGlobal(ctx)
	require.NoError(t, err)
	assert.True(t, v.IsBalanced)
	assert.Equal(t, 420, v.EntryCount)
	assert.Nil(t, v.TransactionID)
}

func TestVerifierService_FindDiscrepancies(t *testing.T) {
	d := setupVerifierService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	clean := activeAccount(uuid.New(), "100.00")
	drifted := activeAccount(uuid.New(), "100.00")
	drifted.AccountNumber = "ACC-DRIFT001"

	cleanLedger := userLedgerAccount(clean.ID)
	driftedLedger := userLedgerAccount(drifted.ID)

	d.accountRepo.EXPECT().ListActive(ctx).Return([]domain.Account{*clean, *drifted}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, clean.ID).Return(cleanLedger, nil)
	d.ledgerRepo.EXPECT().LedgerBalance(ctx, cleanLedger.ID).Return(decimal.RequireFromString("100.00"), nil)
	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, drifted.ID).Return(driftedLedger, nil)
	d.ledgerRepo.EXPECT().LedgerBalance(ctx, driftedLedger.ID).Return(decimal.RequireFromString("90.00"), nil)

	found, err := d.svc.FindDiscrepancies(ctx)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, drifted.ID, found[0].AccountID)
	assert.Equal(t, "ACC-DRIFT001", found[0].AccountNumber)
	assert.True(t, found[0].Difference.Equal(decimal.RequireFromString("10.00")))
}

func TestVerifierService_FindDiscrepancies_SubCentDriftIgnored(t *testing.T) {
	d := setupVerifierService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	acc := activeAccount(uuid.New(), "100.00")
	la := userLedgerAccount(acc.ID)

	d.accountRepo.EXPECT().ListActive(ctx).Return([]domain.Account{*acc}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().GetOrCreateForAccount(ctx, tx, acc.ID).Return(la, nil)
	d.ledgerRepo.EXPECT().LedgerBalance(ctx, la.ID).Return(decimal.RequireFromString("100.005"), nil)

	found, err := d.svc.FindDiscrepancies(ctx)
	require.NoError(t, err)
	assert.Empty(t, found)
}
