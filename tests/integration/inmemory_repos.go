package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aura-bank-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.AccountNumber == a.AccountNumber {
			return fmt.Errorf("account number already exists")
		}
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByAccountNumber(ctx context.Context, number string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.AccountNumber == number {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryAccountRepo) ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, id uuid.UUID, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Balance = a.Balance.Add(delta)
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryAccountRepo) ListActive(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Account
	for _, a := range r.accounts {
		if a.Active {
			result = append(result, *a)
		}
	}
	return result, nil
}

// --- In-Memory Card Repo ---

type inMemoryCardRepo struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]*domain.Card
}

func newInMemoryCardRepo() *inMemoryCardRepo {
	return &inMemoryCardRepo{cards: make(map[uuid.UUID]*domain.Card)}
}

func (r *inMemoryCardRepo) Create(ctx context.Context, c *domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.cards {
		if existing.AccountID == c.AccountID {
			return fmt.Errorf("card already exists for account")
		}
	}
	cp := *c
	r.cards[c.ID] = &cp
	return nil
}

func (r *inMemoryCardRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.cards {
		if c.AccountID == accountID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryCardRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[id]
	if !ok {
		return fmt.Errorf("card not found")
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.LedgerAccount
	entries  []domain.LedgerEntry
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{accounts: make(map[uuid.UUID]*domain.LedgerAccount)}
}

func (r *inMemoryLedgerRepo) EnsureSystemAccounts(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sys := range domain.SystemAccounts() {
		if _, ok := r.accounts[sys.ID]; !ok {
			cp := sys
			cp.CreatedAt = time.Now().UTC()
			r.accounts[sys.ID] = &cp
		}
	}
	return nil
}

func (r *inMemoryLedgerRepo) GetOrCreateForAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.LedgerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, la := range r.accounts {
		if la.ReferenceID != nil && *la.ReferenceID == accountID {
			cp := *la
			return &cp, nil
		}
	}
	la := &domain.LedgerAccount{
		ID:          uuid.New(),
		AccountType: domain.LedgerAccountTypeUser,
		ReferenceID: &accountID,
		Name:        fmt.Sprintf("User Account %s", accountID),
		CreatedAt:   time.Now().UTC(),
	}
	r.accounts[la.ID] = la
	cp := *la
	return &cp, nil
}

func (r *inMemoryLedgerRepo) GetSystem(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.LedgerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	la, ok := r.accounts[id]
	if !ok || !la.IsSystemAccount {
		return nil, nil
	}
	cp := *la
	return &cp, nil
}

func (r *inMemoryLedgerRepo) CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *inMemoryLedgerRepo) GetEntriesByTransaction(ctx context.Context, transactionID uuid.UUID) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.LedgerEntry
	for _, e := range r.entries {
		if e.TransactionID == transactionID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *inMemoryLedgerRepo) sums(transactionID *uuid.UUID) (decimal.Decimal, decimal.Decimal, int) {
	debits, credits := decimal.Zero, decimal.Zero
	count := 0
	for _, e := range r.entries {
		if transactionID != nil && e.TransactionID != *transactionID {
			continue
		}
		count++
		if e.EntryType == domain.EntryTypeDebit {
			debits = debits.Add(e.Amount)
		} else {
			credits = credits.Add(e.Amount)
		}
	}
	return debits, credits, count
}

func (r *inMemoryLedgerRepo) SumsByTransactionTx(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID) (decimal.Decimal, decimal.Decimal, int, error) {
	return r.SumsByTransaction(ctx, transactionID)
}

func (r *inMemoryLedgerRepo) SumsByTransaction(ctx context.Context, transactionID uuid.UUID) (decimal.Decimal, decimal.Decimal, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	debits, credits, count := r.sums(&transactionID)
	return debits, credits, count, nil
}

func (r *inMemoryLedgerRepo) GlobalSums(ctx context.Context) (decimal.Decimal, decimal.Decimal, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	debits, credits, count := r.sums(nil)
	return debits, credits, count, nil
}

func (r *inMemoryLedgerRepo) LedgerBalance(ctx context.Context, ledgerAccountID uuid.UUID) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	balance := decimal.Zero
	for _, e := range r.entries {
		if e.LedgerAccountID == ledgerAccountID {
			balance = balance.Add(e.SignedAmount())
		}
	}
	return balance, nil
}

func (r *inMemoryLedgerRepo) MarkReversed(ctx context.Context, tx pgx.Tx, transactionID, reversedBy uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].TransactionID == transactionID {
			r.entries[i].IsReversed = true
			rb := reversedBy
			r.entries[i].ReversedBy = &rb
		}
	}
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.TransactionRecord
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{records: make(map[uuid.UUID]*domain.TransactionRecord)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ReferenceID != nil {
		for _, existing := range r.records {
			if existing.AccountID == t.AccountID && existing.ReferenceID != nil && *existing.ReferenceID == *t.ReferenceID {
				return fmt.Errorf("duplicate reference id")
			}
		}
	}
	cp := *t
	r.records[t.ID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) GetByAccountAndReference(ctx context.Context, accountID uuid.UUID, referenceID string) (*domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.records {
		if t.AccountID == accountID && t.ReferenceID != nil && *t.ReferenceID == referenceID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.TransactionRecord
	for _, t := range r.records {
		if t.AccountID == accountID {
			result = append(result, *t)
		}
	}
	// Newest first, stable enough for tests.
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].CreatedAt.After(result[i].CreatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	if offset >= len(result) {
		return []domain.TransactionRecord{}, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], nil
}

func (r *inMemoryTransactionRepo) SumOutgoingSince(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, t := range r.records {
		if t.AccountID == accountID && t.IsOutgoing() && !t.CreatedAt.Before(since) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

func (r *inMemoryTransactionRepo) UpdateCategory(ctx context.Context, id uuid.UUID, category string, confidence float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.records[id]
	if !ok {
		return fmt.Errorf("transaction not found")
	}
	t.Category = &category
	t.CategoryConfidence = &confidence
	return nil
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.RWMutex
	logs map[string]*domain.IdempotencyRecord
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]*domain.IdempotencyRecord)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, record *domain.IdempotencyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.logs[record.Key] = &cp
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
