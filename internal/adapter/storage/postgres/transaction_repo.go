package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aura-bank-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, account_id, kind, amount, currency, description, category, category_confidence,
		reference_id, ledger_transaction_id, counterparty_id, created_at`

func scanTransaction(row pgx.Row) (*domain.TransactionRecord, error) {
	t := &domain.TransactionRecord{}
	err := row.Scan(
		&t.ID, &t.AccountID, &t.Kind, &t.Amount, &t.Currency,
		&t.Description, &t.Category, &t.CategoryConfidence,
		&t.ReferenceID, &t.LedgerTransactionID, &t.CounterpartyID, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a history row within a transaction. The partial unique
// index on (account_id, reference_id) makes duplicate idempotency keys fail
// here even when two requests race past the cache check.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.TransactionRecord) error {
	query := `INSERT INTO transactions
		(id, account_id, kind, amount, currency, description, category, category_confidence,
		 reference_id, ledger_transaction_id, counterparty_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.AccountID, t.Kind, t.Amount, t.Currency,
		t.Description, t.Category, t.CategoryConfidence,
		t.ReferenceID, t.LedgerTransactionID, t.CounterpartyID, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a history row.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// GetByAccountAndReference is the persistent idempotency check.
func (r *TransactionRepo) GetByAccountAndReference(ctx context.Context, accountID uuid.UUID, referenceID string) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE account_id = $1 AND reference_id = $2`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, accountID, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return t, nil
}

// ListByAccount returns an account's history, newest first.
func (r *TransactionRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var t domain.TransactionRecord
		if err := rows.Scan(
			&t.ID, &t.AccountID, &t.Kind, &t.Amount, &t.Currency,
			&t.Description, &t.Category, &t.CategoryConfidence,
			&t.ReferenceID, &t.LedgerTransactionID, &t.CounterpartyID, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return records, nil
}

// SumOutgoingSince totals outgoing movements after the cutoff, read within
// the open transaction so concurrent spends against the daily limit are
// serialized by the account row lock.
func (r *TransactionRepo) SumOutgoingSince(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE account_id = $1 AND created_at >= $2
		AND kind IN ('TRANSFER_OUT', 'WITHDRAWAL', 'FEE')`

	var total decimal.Decimal
	if err := tx.QueryRow(ctx, query, accountID, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum outgoing: %w", err)
	}
	return total, nil
}

// UpdateCategory stores the classifier's result after the fact. Categorization
// is best effort and runs outside the money-movement transaction.
func (r *TransactionRepo) UpdateCategory(ctx context.Context, id uuid.UUID, category string, confidence float64) error {
	query := `UPDATE transactions SET category = $1, category_confidence = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, category, confidence, id)
	if err != nil {
		return fmt.Errorf("update transaction category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}
