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

type expenseTestDeps struct {
	svc        *ExpenseService
	accounts   *mocks.MockAccountService
	txRepo     *mocks.MockTransactionRepository
	classifier *mocks.MockClassifier
	ctrl       *gomock.Controller
}

func setupExpenseService(t *testing.T) *expenseTestDeps {
	ctrl := gomock.NewController(t)
	d := &expenseTestDeps{
		accounts:   mocks.NewMockAccountService(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		classifier: mocks.NewMockClassifier(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewExpenseService(d.accounts, d.txRepo, d.classifier, zerolog.Nop())
	return d
}

func TestExpenseService_Create_CategorizesAfterCommit(t *testing.T) {
	d := setupExpenseService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	txID := uuid.New()
	amount := decimal.RequireFromString("34.20")
	record := &domain.TransactionRecord{
		ID:          txID,
		AccountID:   accountID,
		Kind:        domain.TransactionKindWithdrawal,
		Amount:      amount,
		Description: "grocery run",
	}
	outcome := &ports.TransferOutcome{Transaction: record}
	category := &domain.Category{Name: "Food & Dining", Confidence: 85}

	d.accounts.EXPECT().Withdraw(ctx, accountID, amount, "grocery run", "exp-1").Return(outcome, nil)

	// Categorization runs on its own goroutine with a fresh context.
	done := make(chan struct{})
	d.txRepo.EXPECT().GetByID(gomock.Any(), txID).Return(record, nil)
	d.classifier.EXPECT().Categorize(gomock.Any(), "grocery run").Return(category, nil)
	d.txRepo.EXPECT().UpdateCategory(gomock.Any(), txID, "Food & Dining", 85.0).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ string, _ float64) error {
			close(done)
			return nil
		})

	got, err := d.svc.Create(ctx, accountID, amount, "grocery run", "exp-1")
	require.NoError(t, err)
	assert.Equal(t, outcome, got)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("background categorization did not run")
	}
}

func TestExpenseService_Create_ReplayedSkipsCategorization(t *testing.T) {
	d := setupExpenseService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	amount := decimal.RequireFromString("34.20")
	outcome := &ports.TransferOutcome{
		Transaction: &domain.TransactionRecord{ID: uuid.New()},
		Replayed:    true,
	}

	d.accounts.EXPECT().Withdraw(ctx, accountID, amount, "grocery run", "exp-1").Return(outcome, nil)

	got, err := d.svc.Create(ctx, accountID, amount, "grocery run", "exp-1")
	require.NoError(t, err)
	assert.True(t, got.Replayed)
}

func TestExpenseService_Create_RequiresDescription(t *testing.T) {
	d := setupExpenseService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Create(context.Background(), uuid.New(), decimal.RequireFromString("10.00"), "", "exp-1")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestExpenseService_Categorize(t *testing.T) {
	d := setupExpenseService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	record := &domain.TransactionRecord{
		ID:          txID,
		AccountID:   uuid.New(),
		Kind:        domain.TransactionKindTransferOut,
		Amount:      decimal.RequireFromString("12.50"),
		Description: "uber ride downtown",
	}
	category := &domain.Category{
		Name:       "Transportation",
		Confidence: 92.5,
		Icon:       "car",
		Color:      "#3b82f6",
		ModelUsed:  "distilbert",
	}

	d.txRepo.EXPECT().GetByID(ctx, txID).Return(record, nil)
	d.classifier.EXPECT().Categorize(ctx, "uber ride downtown").Return(category, nil)
	d.txRepo.EXPECT().UpdateCategory(ctx, txID, "Transportation", 92.5).Return(nil)

	got, err := d.svc.Categorize(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, category, got)
}

func TestExpenseService_Categorize_TransactionNotFound(t *testing.T) {
	d := setupExpenseService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	d.txRepo.EXPECT().GetByID(ctx, txID).Return(nil, nil)

	_, err := d.svc.Categorize(ctx, txID)
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_001", appErr.Code)
}

func TestExpenseService_Categorize_ClassifierDown(t *testing.T) {
	d := setupExpenseService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txID := uuid.New()
	record := &domain.TransactionRecord{ID: txID, Description: "coffee"}

	d.txRepo.EXPECT().GetByID(ctx, txID).Return(record, nil)
	d.classifier.EXPECT().Categorize(ctx, "coffee").Return(nil, errors.New("connection refused"))

	_, err := d.svc.Categorize(ctx, txID)
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DEP_001", appErr.Code)
}

func TestExpenseService_Preview(t *testing.T) {
	d := setupExpenseService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	category := &domain.Category{Name: "Food & Dining", Confidence: 85}

	d.classifier.EXPECT().Categorize(ctx, "sushi dinner").Return(category, nil)

	got, err := d.svc.Preview(ctx, "sushi dinner")
	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", got.Name)
}
