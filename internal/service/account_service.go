package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	depositEndpoint  = "deposit"
	withdrawEndpoint = "withdraw"
)

// AccountServiceImpl implements ports.AccountService: account lifecycle and
// teller-style single-account movements.
type AccountServiceImpl struct {
	accountRepo ports.AccountRepository
	cardRepo    ports.CardRepository
	txRepo      ports.TransactionRepository
	idempRepo   ports.IdempotencyRepository
	idempCache  ports.IdempotencyCache
	ledger      ports.LedgerEngine
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	accountRepo ports.AccountRepository,
	cardRepo ports.CardRepository,
	txRepo ports.TransactionRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	ledger ports.LedgerEngine,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		txRepo:      txRepo,
		idempRepo:   idempRepo,
		idempCache:  idempCache,
		ledger:      ledger,
		events:      events,
		transactor:  transactor,
		log:         log,
	}
}

// OpenAccount creates an empty active account for a user.
func (s *AccountServiceImpl) OpenAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	now := time.Now().UTC()
	account := &domain.Account{
		ID:            uuid.New(),
		UserID:        userID,
		AccountNumber: "ACC-" + strings.ToUpper(uuid.NewString()[:8]),
		Balance:       decimal.Zero,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create account: %w", err))
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("user_id", userID.String()).
		Msg("account opened")

	return account, nil
}

// GetAccount fetches an account.
func (s *AccountServiceImpl) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	return account, nil
}

// Deposit moves cash from the bank's reserve into the account.
func (s *AccountServiceImpl) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*ports.TransferOutcome, error) {
	return s.tellerMovement(ctx, accountID, amount, "", idempotencyKey, depositEndpoint, domain.TransactionKindDeposit)
}

// Withdraw moves cash out of the account back to the reserve. The description
// survives on the history row, so expense flows can label what was spent.
func (s *AccountServiceImpl) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, description, idempotencyKey string) (*ports.TransferOutcome, error) {
	return s.tellerMovement(ctx, accountID, amount, description, idempotencyKey, withdrawEndpoint, domain.TransactionKindWithdrawal)
}

func (s *AccountServiceImpl) tellerMovement(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, description, idempotencyKey, endpoint string, kind domain.TransactionKind) (*ports.TransferOutcome, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	// Only supplied keys are validated; a missing key is synthesized so the
	// movement still gets a unique reference on its history row.
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	} else if !domain.ValidIdempotencyKey(idempotencyKey) {
		return nil, apperror.ErrInvalidIdempotencyKey()
	}

	idempKey := domain.BuildIdempotencyKey(accountID, endpoint, idempotencyKey)
	if outcome, err := s.checkIdempotency(ctx, idempKey, accountID, idempotencyKey); err != nil {
		return nil, err
	} else if outcome != nil {
		return outcome, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	if !account.Active {
		return nil, apperror.ErrAccountInactive()
	}

	var ledgerResult *domain.LedgerResult
	var delta decimal.Decimal
	switch kind {
	case domain.TransactionKindDeposit:
		description = "Cash deposit"
		ledgerResult, err = s.ledger.RecordDeposit(ctx, dbTx, accountID, amount, description)
		delta = amount
	case domain.TransactionKindWithdrawal:
		if description == "" {
			description = "Cash withdrawal"
		}
		if !account.CanDebit(amount) {
			return nil, apperror.ErrInsufficientFunds()
		}
		if err := enforceCardLimits(ctx, dbTx, s.cardRepo, s.txRepo, accountID, amount); err != nil {
			return nil, err
		}
		ledgerResult, err = s.ledger.RecordWithdrawal(ctx, dbTx, accountID, amount, description)
		delta = amount.Neg()
	default:
		return nil, apperror.InternalError(fmt.Errorf("unsupported teller movement %q", kind))
	}
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.ApplyBalanceDelta(ctx, dbTx, accountID, delta); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("apply balance delta: %w", err))
	}

	now := time.Now().UTC()
	clientKey := idempotencyKey
	record := newHistoryRecord(accountID, kind, amount, description, ledgerResult.TransactionID, &clientKey, nil, now)
	if err := s.txRepo.Create(ctx, dbTx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create history: %w", err))
	}

	outcome := &ports.TransferOutcome{Transaction: record, LedgerResult: ledgerResult}
	idempRecord, err := buildIdempotencyRecord(idempKey, outcome, now)
	if err != nil {
		return nil, err
	}
	if err := s.idempRepo.Create(ctx, dbTx, idempRecord); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.idempCache.Set(ctx, idempKey, idempRecord, domain.IdempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
	}
	if s.events != nil {
		s.events.PublishTransferCompleted(ctx, outcome)
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("kind", string(kind)).
		Str("amount", amount.String()).
		Msg("teller movement completed")

	return outcome, nil
}

// ChargeFee debits an account and credits the bank's fee account. Fees are
// system initiated, so there is no client idempotency key.
func (s *AccountServiceImpl) ChargeFee(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, description string) (*ports.TransferOutcome, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	if !account.CanDebit(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	ledgerResult, err := s.ledger.RecordFee(ctx, dbTx, accountID, amount, description)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.ApplyBalanceDelta(ctx, dbTx, accountID, amount.Neg()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("apply fee delta: %w", err))
	}

	record := newHistoryRecord(accountID, domain.TransactionKindFee, amount, description, ledgerResult.TransactionID, nil, nil, time.Now().UTC())
	if err := s.txRepo.Create(ctx, dbTx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create fee history: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("amount", amount.String()).
		Str("description", description).
		Msg("fee charged")

	return &ports.TransferOutcome{Transaction: record, LedgerResult: ledgerResult}, nil
}

// History returns an account's transaction history, newest first.
func (s *AccountServiceImpl) History(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	records, err := s.txRepo.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list history: %w", err))
	}
	return records, nil
}

// checkIdempotency mirrors the transfer service's two-layer duplicate check
// for teller movements.
func (s *AccountServiceImpl) checkIdempotency(ctx context.Context, idempKey string, accountID uuid.UUID, clientKey string) (*ports.TransferOutcome, error) {
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
