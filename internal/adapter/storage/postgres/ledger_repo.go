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

// LedgerRepo implements ports.LedgerRepository. Entries are append-only;
// the schema has no UPDATE path except the reversal flag.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// EnsureSystemAccounts creates the bank's internal ledger accounts if they
// do not exist yet. Called once at startup; safe to run concurrently across
// instances because the fixed ids conflict instead of duplicating.
func (r *LedgerRepo) EnsureSystemAccounts(ctx context.Context) error {
	query := `INSERT INTO ledger_accounts (id, account_type, reference_id, name, is_system_account, created_at)
		VALUES ($1, $2, NULL, $3, TRUE, NOW())
		ON CONFLICT (id) DO NOTHING`

	for _, sys := range domain.SystemAccounts() {
		if _, err := r.pool.Exec(ctx, query, sys.ID, sys.AccountType, sys.Name); err != nil {
			return fmt.Errorf("ensure system account %s: %w", sys.Name, err)
		}
	}
	return nil
}

// GetOrCreateForAccount returns the ledger account mirroring a bank account,
// creating it lazily on first use. Runs inside the caller's transaction so a
// rolled-back movement does not leave a stray ledger account behind.
func (r *LedgerRepo) GetOrCreateForAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.LedgerAccount, error) {
	query := `SELECT id, account_type, reference_id, name, is_system_account, created_at
		FROM ledger_accounts WHERE reference_id = $1`

	la := &domain.LedgerAccount{}
	err := tx.QueryRow(ctx, query, accountID).Scan(
		&la.ID, &la.AccountType, &la.ReferenceID, &la.Name,
		&la.IsSystemAccount, &la.CreatedAt,
	)
	if err == nil {
		return la, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get ledger account: %w", err)
	}

	la = &domain.LedgerAccount{
		ID:          uuid.New(),
		AccountType: domain.LedgerAccountTypeUser,
		ReferenceID: &accountID,
		Name:        fmt.Sprintf("User Account %s", accountID),
		CreatedAt:   time.Now().UTC(),
	}
	insert := `INSERT INTO ledger_accounts (id, account_type, reference_id, name, is_system_account, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)`
	if _, err := tx.Exec(ctx, insert, la.ID, la.AccountType, la.ReferenceID, la.Name, la.CreatedAt); err != nil {
		return nil, fmt.Errorf("create ledger account: %w", err)
	}
	return la, nil
}

// GetSystem fetches a system ledger account by its fixed id.
func (r *LedgerRepo) GetSystem(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.LedgerAccount, error) {
	query := `SELECT id, account_type, reference_id, name, is_system_account, created_at
		FROM ledger_accounts WHERE id = $1 AND is_system_account = TRUE`

	la := &domain.LedgerAccount{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&la.ID, &la.AccountType, &la.ReferenceID, &la.Name,
		&la.IsSystemAccount, &la.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get system ledger account: %w", err)
	}
	return la, nil
}

// CreateEntry appends one posting within a transaction.
func (r *LedgerRepo) CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries
		(id, transaction_id, ledger_account_id, entry_type, amount, currency, description, reference_type, reference_id, is_reversed, reversed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.TransactionID, e.LedgerAccountID, e.EntryType,
		e.Amount, e.Currency, e.Description, e.ReferenceType,
		e.ReferenceID, e.IsReversed, e.ReversedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetEntriesByTransaction returns all postings sharing a transaction group id.
func (r *LedgerRepo) GetEntriesByTransaction(ctx context.Context, transactionID uuid.UUID) ([]domain.LedgerEntry, error) {
	query := `SELECT id, transaction_id, ledger_account_id, entry_type, amount, currency, description, reference_type, reference_id, is_reversed, reversed_by, created_at
		FROM ledger_entries WHERE transaction_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get entries by transaction: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.TransactionID, &e.LedgerAccountID, &e.EntryType,
			&e.Amount, &e.Currency, &e.Description, &e.ReferenceType,
			&e.ReferenceID, &e.IsReversed, &e.ReversedBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}

const sumsByTxQuery = `SELECT
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'DEBIT'), 0),
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'CREDIT'), 0),
		COUNT(*)
	FROM ledger_entries WHERE transaction_id = $1`

// SumsByTransactionTx totals one group's debits and credits inside an open
// transaction, so pre-commit verification sees uncommitted entries.
func (r *LedgerRepo) SumsByTransactionTx(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID) (decimal.Decimal, decimal.Decimal, int, error) {
	return scanSums(tx.QueryRow(ctx, sumsByTxQuery, transactionID))
}

// SumsByTransaction totals one group's debits and credits.
func (r *LedgerRepo) SumsByTransaction(ctx context.Context, transactionID uuid.UUID) (decimal.Decimal, decimal.Decimal, int, error) {
	return scanSums(r.pool.QueryRow(ctx, sumsByTxQuery, transactionID))
}

// GlobalSums totals every entry in the ledger.
func (r *LedgerRepo) GlobalSums(ctx context.Context) (decimal.Decimal, decimal.Decimal, int, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'DEBIT'), 0),
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'CREDIT'), 0),
		COUNT(*)
	FROM ledger_entries`

	return scanSums(r.pool.QueryRow(ctx, query))
}

func scanSums(row pgx.Row) (decimal.Decimal, decimal.Decimal, int, error) {
	var debits, credits decimal.Decimal
	var count int
	if err := row.Scan(&debits, &credits, &count); err != nil {
		return decimal.Zero, decimal.Zero, 0, fmt.Errorf("scan ledger sums: %w", err)
	}
	return debits, credits, count, nil
}

// LedgerBalance derives an account's balance from its entries. Reversed
// entries are included: their offsetting postings cancel them out.
func (r *LedgerRepo) LedgerBalance(ctx context.Context, ledgerAccountID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN entry_type = 'DEBIT' THEN amount ELSE -amount END), 0)
		FROM ledger_entries WHERE ledger_account_id = $1`

	var balance decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, ledgerAccountID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("derive ledger balance: %w", err)
	}
	return balance, nil
}

// MarkReversed flags every entry of a group as reversed, recording the
// reversing group's id.
func (r *LedgerRepo) MarkReversed(ctx context.Context, tx pgx.Tx, transactionID, reversedBy uuid.UUID) error {
	query := `UPDATE ledger_entries SET is_reversed = TRUE, reversed_by = $1
		WHERE transaction_id = $2 AND is_reversed = FALSE`

	tag, err := tx.Exec(ctx, query, reversedBy, transactionID)
	if err != nil {
		return fmt.Errorf("mark entries reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no reversible entries for transaction %s", transactionID)
	}
	return nil
}
