package ports

import (
	"context"
	"time"

	"aura-bank-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerEngine writes balanced double-entry postings. All methods take an
// open pgx.Tx: the engine never begins or commits transactions itself, the
// calling orchestrator owns the transaction boundary.
type LedgerEngine interface {
	// RecordTransfer moves amount between two user ledger accounts as a
	// debit/credit pair sharing one transaction id.
	RecordTransfer(ctx context.Context, tx pgx.Tx, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error)
	// RecordDeposit moves cash from the bank's reserve into a user account.
	RecordDeposit(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error)
	// RecordWithdrawal moves cash from a user account back to the reserve.
	RecordWithdrawal(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error)
	// RecordFee charges a user account and credits the fees system account.
	RecordFee(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error)
	// Reverse writes offsetting entries for a prior transaction group and
	// flags the originals. A group may be reversed at most once.
	Reverse(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID, reason string) (*domain.LedgerResult, error)
	// VerifyTransaction checks one group's debits against its credits,
	// reading within the open transaction.
	VerifyTransaction(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID) (*domain.BalanceVerification, error)
}

// TransferRequest holds validated input for a peer-to-peer transfer. The
// recipient is addressed by account number, the form customers exchange.
// PIN is optional; when set it is checked against the sender's card hash
// before any money moves. An empty IdempotencyKey gets a synthesized one.
type TransferRequest struct {
	FromAccountID   uuid.UUID
	ToAccountNumber string
	Amount          decimal.Decimal
	Description     string
	IdempotencyKey  string
	PIN             string
}

// TransferOutcome is the result handed back to the transport layer. Replayed
// marks responses served from the idempotency cache rather than executed.
type TransferOutcome struct {
	Transaction       *domain.TransactionRecord `json:"transaction"`
	LedgerResult      *domain.LedgerResult      `json:"ledger_result,omitempty"`
	Replayed          bool                      `json:"-"`
	OriginalTimestamp time.Time                 `json:"-"`
}

// TransferService orchestrates money movement between accounts.
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferOutcome, error)
	ReverseTransfer(ctx context.Context, transactionID uuid.UUID, reason string) (*TransferOutcome, error)
}

// AccountService orchestrates teller-style single-account movements.
type AccountService interface {
	OpenAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*TransferOutcome, error)
	// Withdraw debits the account. An empty description defaults to a plain
	// cash withdrawal.
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, description, idempotencyKey string) (*TransferOutcome, error)
	ChargeFee(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, description string) (*TransferOutcome, error)
	History(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error)
}

// CardService manages debit cards and card-and-PIN session authentication.
type CardService interface {
	IssueCard(ctx context.Context, accountID uuid.UUID, pin string, dailyLimit decimal.Decimal) (*domain.Card, error)
	SetCardStatus(ctx context.Context, cardID uuid.UUID, status domain.CardStatus) error
	// Authenticate verifies the card PIN for an account and issues a session
	// token for the account's owner.
	Authenticate(ctx context.Context, accountID uuid.UUID, pin string) (string, time.Time, error)
}

// ExpenseService records categorized spending and previews categories.
type ExpenseService interface {
	// Create records a withdrawal with the given description, then enriches
	// the history row with a category in the background.
	Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, description, idempotencyKey string) (*TransferOutcome, error)
	Categorize(ctx context.Context, transactionID uuid.UUID) (*domain.Category, error)
	CategorizeAsync(transactionID uuid.UUID)
	Preview(ctx context.Context, description string) (*domain.Category, error)
}

// VerifierService audits ledger integrity.
type VerifierService interface {
	VerifyTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.BalanceVerification, error)
	VerifyGlobal(ctx context.Context) (*domain.BalanceVerification, error)
	FindDiscrepancies(ctx context.Context) ([]domain.BalanceDiscrepancy, error)
}

// Classifier assigns a spending category to a transaction description.
// Implementations are expected to degrade to a local heuristic when the
// model backend is unavailable.
type Classifier interface {
	Categorize(ctx context.Context, description string) (*domain.Category, error)
}

// EventPublisher emits domain events for downstream consumers. Publishing is
// best effort and must never fail the originating operation.
type EventPublisher interface {
	PublishTransferCompleted(ctx context.Context, outcome *TransferOutcome)
	Close() error
}

// PINService handles card PIN hashing (argon2id).
type PINService interface {
	Hash(pin string) (string, error)
	Verify(pin string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error) // nil, nil on miss
	Set(ctx context.Context, key string, record *domain.IdempotencyRecord, ttl time.Duration) error
}
