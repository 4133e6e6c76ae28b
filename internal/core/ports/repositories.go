package ports

import (
	"context"
	"time"

	"aura-bank-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for bank accounts.
// Methods accepting pgx.Tx run inside transaction blocks for pessimistic locking.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByAccountNumber(ctx context.Context, number string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	// ApplyBalanceDelta adjusts the cached balance column. The authoritative
	// movement is the ledger entries written in the same transaction.
	ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, id uuid.UUID, delta decimal.Decimal) error
	ListActive(ctx context.Context) ([]domain.Account, error)
}

// CardRepository defines persistence operations for debit cards.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Card, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) error
}

// LedgerRepository defines persistence for ledger accounts and entries.
// Entries are append-only; the only permitted mutation is flagging an entry
// as reversed, which itself happens alongside new offsetting entries.
type LedgerRepository interface {
	EnsureSystemAccounts(ctx context.Context) error
	GetOrCreateForAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.LedgerAccount, error)
	GetSystem(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.LedgerAccount, error)
	CreateEntry(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	GetEntriesByTransaction(ctx context.Context, transactionID uuid.UUID) ([]domain.LedgerEntry, error)
	// SumsByTransactionTx totals debits and credits for one transaction group
	// inside an open transaction, so pre-commit verification sees its own writes.
	SumsByTransactionTx(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID) (debits, credits decimal.Decimal, count int, err error)
	SumsByTransaction(ctx context.Context, transactionID uuid.UUID) (debits, credits decimal.Decimal, count int, err error)
	GlobalSums(ctx context.Context) (debits, credits decimal.Decimal, count int, err error)
	// LedgerBalance derives an account's balance from its entries.
	LedgerBalance(ctx context.Context, ledgerAccountID uuid.UUID) (decimal.Decimal, error)
	MarkReversed(ctx context.Context, tx pgx.Tx, transactionID, reversedBy uuid.UUID) error
}

// TransactionRepository defines persistence for customer-facing history rows.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.TransactionRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error)
	// GetByAccountAndReference is the persistent idempotency check. Returns
	// (nil, nil) when no row matches.
	GetByAccountAndReference(ctx context.Context, accountID uuid.UUID, referenceID string) (*domain.TransactionRecord, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error)
	// SumOutgoingSince totals outgoing movements after the cutoff, used for
	// daily card limit enforcement.
	SumOutgoingSince(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, since time.Time) (decimal.Decimal, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, category string, confidence float64) error
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.IdempotencyRecord) error
	Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
