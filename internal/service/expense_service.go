package service

import (
	"context"
	"fmt"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// categorizeTimeout bounds the background categorization of one row; the
// classifier's own breaker handles a hung sidecar inside this window.
const categorizeTimeout = 10 * time.Second

// ExpenseService assigns spending categories to transaction history rows.
// Categorization runs after the money-movement transaction committed and
// never affects it.
type ExpenseService struct {
	accounts   ports.AccountService
	txRepo     ports.TransactionRepository
	classifier ports.Classifier
	log        zerolog.Logger
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(accounts ports.AccountService, txRepo ports.TransactionRepository, classifier ports.Classifier, log zerolog.Logger) *ExpenseService {
	return &ExpenseService{
		accounts:   accounts,
		txRepo:     txRepo,
		classifier: classifier,
		log:        log,
	}
}

// Create records an expense as a withdrawal carrying the spend description,
// then categorizes the committed row in the background. A replayed outcome is
// returned as-is: the original already went through categorization.
func (s *ExpenseService) Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, description, idempotencyKey string) (*ports.TransferOutcome, error) {
	if description == "" {
		return nil, apperror.Validation("expense description is required")
	}

	outcome, err := s.accounts.Withdraw(ctx, accountID, amount, description, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if !outcome.Replayed {
		s.CategorizeAsync(outcome.Transaction.ID)
	}
	return outcome, nil
}

// Categorize classifies one history row and persists the result.
func (s *ExpenseService) Categorize(ctx context.Context, transactionID uuid.UUID) (*domain.Category, error) {
	record, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load transaction: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotFound("transaction")
	}

	category, err := s.classifier.Categorize(ctx, record.Description)
	if err != nil {
		return nil, apperror.ErrServiceUnavailable("classifier")
	}

	if err := s.txRepo.UpdateCategory(ctx, transactionID, category.Name, category.Confidence); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("store category: %w", err))
	}

	s.log.Debug().
		Str("transaction_id", transactionID.String()).
		Str("category", category.Name).
		Float64("confidence", category.Confidence).
		Str("model", category.ModelUsed).
		Msg("transaction categorized")

	return category, nil
}

// CategorizeAsync classifies a row in the background with its own deadline,
// detached from the request context that triggered it.
func (s *ExpenseService) CategorizeAsync(transactionID uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), categorizeTimeout)
		defer cancel()

		if _, err := s.Categorize(ctx, transactionID); err != nil {
			s.log.Warn().Err(err).Str("transaction_id", transactionID.String()).Msg("background categorization failed")
		}
	}()
}

// Preview classifies a description without persisting anything.
func (s *ExpenseService) Preview(ctx context.Context, description string) (*domain.Category, error) {
	category, err := s.classifier.Categorize(ctx, description)
	if err != nil {
		return nil, apperror.ErrServiceUnavailable("classifier")
	}
	return category, nil
}
