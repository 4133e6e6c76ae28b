package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const transferEndpoint = "transfer"

// TransferServiceImpl implements ports.TransferService. It owns the
// transaction boundary: every transfer either commits completely (both
// balance updates, ledger entries, history rows, idempotency log) or not
// at all.
type TransferServiceImpl struct {
	accountRepo ports.AccountRepository
	cardRepo    ports.CardRepository
	txRepo      ports.TransactionRepository
	idempRepo   ports.IdempotencyRepository
	idempCache  ports.IdempotencyCache
	ledger      ports.LedgerEngine
	pins        ports.PINService
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl. events may be nil
// when no broker is configured.
func NewTransferService(
	accountRepo ports.AccountRepository,
	cardRepo ports.CardRepository,
	txRepo ports.TransactionRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	ledger ports.LedgerEngine,
	pins ports.PINService,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		txRepo:      txRepo,
		idempRepo:   idempRepo,
		idempCache:  idempCache,
		ledger:      ledger,
		pins:        pins,
		events:      events,
		transactor:  transactor,
		log:         log,
	}
}

// Transfer moves money between two accounts with pessimistic locking and
// two-layer idempotency.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferOutcome, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	// A client that retries supplies its own key; one-shot requests get a
	// synthesized key so the scoped uniqueness still holds downstream.
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	} else if !domain.ValidIdempotencyKey(req.IdempotencyKey) {
		return nil, apperror.ErrInvalidIdempotencyKey()
	}
	if req.PIN != "" {
		if err := s.verifyCardPIN(ctx, req.FromAccountID, req.PIN); err != nil {
			return nil, err
		}
	}

	recipient, err := s.accountRepo.GetByAccountNumber(ctx, req.ToAccountNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve recipient: %w", err))
	}
	if recipient == nil {
		return nil, apperror.ErrNotFound("account")
	}
	toID := recipient.ID
	if req.FromAccountID == toID {
		return nil, apperror.ErrSelfTransfer()
	}

	idempKey := domain.BuildIdempotencyKey(req.FromAccountID, transferEndpoint, req.IdempotencyKey)

	if outcome, err := s.checkIdempotency(ctx, idempKey, req.FromAccountID, req.IdempotencyKey); err != nil {
		return nil, err
	} else if outcome != nil {
		return outcome, nil
	}

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock both account rows in ascending id order. A fixed order means two
	// opposing transfers (A->B and B->A) cannot deadlock on each other.
	first, second := req.FromAccountID, toID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}
	locked := make(map[uuid.UUID]*domain.Account, 2)
	for _, id := range []uuid.UUID{first, second} {
		acc, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, id)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
		}
		if acc == nil {
			return nil, apperror.ErrNotFound("account")
		}
		locked[id] = acc
	}
	from, to := locked[req.FromAccountID], locked[toID]

	if !from.Active || !to.Active {
		return nil, apperror.ErrAccountInactive()
	}
	if !from.CanDebit(req.Amount) {
		return nil, apperror.ErrInsufficientFunds()
	}
	if err := enforceCardLimits(ctx, dbTx, s.cardRepo, s.txRepo, from.ID, req.Amount); err != nil {
		return nil, err
	}

	// Ledger postings, verified balanced before commit.
	ledgerResult, err := s.ledger.RecordTransfer(ctx, dbTx, from.ID, to.ID, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}

	// Cached balances follow the ledger.
	if err := s.accountRepo.ApplyBalanceDelta(ctx, dbTx, from.ID, req.Amount.Neg()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit sender balance: %w", err))
	}
	if err := s.accountRepo.ApplyBalanceDelta(ctx, dbTx, to.ID, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit receiver balance: %w", err))
	}

	now := time.Now().UTC()
	clientKey := req.IdempotencyKey
	outRecord := newHistoryRecord(from.ID, domain.TransactionKindTransferOut, req.Amount, req.Description, ledgerResult.TransactionID, &clientKey, &to.ID, now)
	inRecord := newHistoryRecord(to.ID, domain.TransactionKindTransferIn, req.Amount, req.Description, ledgerResult.TransactionID, nil, &from.ID, now)

	if err := s.txRepo.Create(ctx, dbTx, outRecord); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create sender history: %w", err))
	}
	if err := s.txRepo.Create(ctx, dbTx, inRecord); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create receiver history: %w", err))
	}

	outcome := &ports.TransferOutcome{
		Transaction:  outRecord,
		LedgerResult: ledgerResult,
	}
	record, err := buildIdempotencyRecord(idempKey, outcome, now)
	if err != nil {
		return nil, err
	}
	if err := s.idempRepo.Create(ctx, dbTx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.finishCommitted(ctx, idempKey, record, outcome)

	s.log.Info().
		Str("ledger_transaction_id", ledgerResult.TransactionID.String()).
		Str("from_account", from.ID.String()).
		Str("to_account", to.ID.String()).
		Str("amount", req.Amount.String()).
		Msg("transfer completed")

	return outcome, nil
}

// ReverseTransfer undoes a committed movement by writing offsetting ledger
// entries. transactionID is the history row of the original movement.
func (s *TransferServiceImpl) ReverseTransfer(ctx context.Context, transactionID uuid.UUID, reason string) (*ports.TransferOutcome, error) {
	original, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load original transaction: %w", err))
	}
	if original == nil {
		return nil, apperror.ErrNotFound("transaction")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock every involved account, ascending, before touching balances.
	ids := []uuid.UUID{original.AccountID}
	if original.CounterpartyID != nil {
		ids = append(ids, *original.CounterpartyID)
		if bytes.Compare(ids[1][:], ids[0][:]) < 0 {
			ids[0], ids[1] = ids[1], ids[0]
		}
	}
	for _, id := range ids {
		acc, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, id)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
		}
		if acc == nil {
			return nil, apperror.ErrNotFound("account")
		}
	}

	ledgerResult, err := s.ledger.Reverse(ctx, dbTx, original.LedgerTransactionID, reason)
	if err != nil {
		return nil, err
	}

	// Undo the cached balance movement of the original.
	ownerDelta := original.Amount
	if !original.IsOutgoing() {
		ownerDelta = ownerDelta.Neg()
	}
	if err := s.accountRepo.ApplyBalanceDelta(ctx, dbTx, original.AccountID, ownerDelta); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("restore owner balance: %w", err))
	}
	if original.CounterpartyID != nil {
		if err := s.accountRepo.ApplyBalanceDelta(ctx, dbTx, *original.CounterpartyID, ownerDelta.Neg()); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("restore counterparty balance: %w", err))
		}
	}

	now := time.Now().UTC()
	reversalRecord := newHistoryRecord(original.AccountID, domain.TransactionKindReversal, original.Amount,
		fmt.Sprintf("Reversal of %s: %s", original.ID, reason), ledgerResult.TransactionID, nil, original.CounterpartyID, now)
	if err := s.txRepo.Create(ctx, dbTx, reversalRecord); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create reversal history: %w", err))
	}
	if original.CounterpartyID != nil {
		counterRecord := newHistoryRecord(*original.CounterpartyID, domain.TransactionKindReversal, original.Amount,
			fmt.Sprintf("Reversal of %s: %s", original.ID, reason), ledgerResult.TransactionID, nil, &original.AccountID, now)
		if err := s.txRepo.Create(ctx, dbTx, counterRecord); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create counterparty reversal history: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	outcome := &ports.TransferOutcome{
		Transaction:  reversalRecord,
		LedgerResult: ledgerResult,
	}
	if s.events != nil {
		s.events.PublishTransferCompleted(ctx, outcome)
	}

	s.log.Info().
		Str("original_id", original.ID.String()).
		Str("reversal_ledger_transaction_id", ledgerResult.TransactionID.String()).
		Str("reason", reason).
		Msg("transfer reversed")

	return outcome, nil
}

// verifyCardPIN checks a supplied PIN against the sender's card hash. Runs
// before any row is locked, so a bad PIN never holds locks. A PIN sent for
// an account without a card fails the same way a wrong PIN does.
func (s *TransferServiceImpl) verifyCardPIN(ctx context.Context, accountID uuid.UUID, pin string) error {
	card, err := s.cardRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("load card: %w", err))
	}
	if card == nil {
		return apperror.ErrInvalidPIN()
	}
	ok, err := s.pins.Verify(pin, card.PINHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("verify pin: %w", err))
	}
	if !ok {
		return apperror.ErrInvalidPIN()
	}
	return nil
}

// checkIdempotency runs the two-layer duplicate check: Redis first, then the
// durable log, then the transaction history itself. A Redis outage degrades
// to the database checks instead of failing the request.
func (s *TransferServiceImpl) checkIdempotency(ctx context.Context, idempKey string, accountID uuid.UUID, clientKey string) (*ports.TransferOutcome, error) {
	cached, err := s.idempCache.Get(ctx, idempKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return replayOutcome(cached)
	}

	stored, err := s.idempRepo.Get(ctx, idempKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if stored != nil {
		return replayOutcome(stored)
	}

	// The history row is the last line of defense: it exists even for
	// movements recorded before the response log was written.
	existing, err := s.txRepo.GetByAccountAndReference(ctx, accountID, clientKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("history idempotency check: %w", err))
	}
	if existing != nil {
		return &ports.TransferOutcome{
			Transaction:       existing,
			Replayed:          true,
			OriginalTimestamp: existing.CreatedAt,
		}, nil
	}
	return nil, nil
}

// finishCommitted runs the best-effort post-commit steps: Redis caching and
// event publishing. Failures are logged, never surfaced.
func (s *TransferServiceImpl) finishCommitted(ctx context.Context, idempKey string, record *domain.IdempotencyRecord, outcome *ports.TransferOutcome) {
	if err := s.idempCache.Set(ctx, idempKey, record, domain.IdempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
	}
	if s.events != nil {
		s.events.PublishTransferCompleted(ctx, outcome)
	}
}
