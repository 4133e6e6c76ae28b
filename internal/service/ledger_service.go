package service

import (
	"context"
	"fmt"
	"time"

	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultCurrency = "USD"

// LedgerServiceImpl implements ports.LedgerEngine. It only writes postings;
// transaction boundaries belong to the calling orchestrator, so a failed
// verification rolls the whole movement back.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(ledgerRepo ports.LedgerRepository, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		log:        log,
	}
}

// posting is one side of a movement before it becomes a LedgerEntry.
type posting struct {
	ledgerAccountID uuid.UUID
	entryType       domain.EntryType
}

// RecordTransfer writes the debit/credit pair for a peer-to-peer transfer.
// The sender is credited (balance down), the receiver debited (balance up).
func (s *LedgerServiceImpl) RecordTransfer(ctx context.Context, tx pgx.Tx, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error) {
	from, err := s.ledgerRepo.GetOrCreateForAccount(ctx, tx, fromAccountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("sender ledger account: %w", err))
	}
	to, err := s.ledgerRepo.GetOrCreateForAccount(ctx, tx, toAccountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("receiver ledger account: %w", err))
	}

	return s.post(ctx, tx, amount, description, domain.EntryRefTransfer, []posting{
		{from.ID, domain.EntryTypeCredit},
		{to.ID, domain.EntryTypeDebit},
	})
}

// RecordDeposit moves cash from the bank's reserve into a user account.
func (s *LedgerServiceImpl) RecordDeposit(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error) {
	user, err := s.ledgerRepo.GetOrCreateForAccount(ctx, tx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("user ledger account: %w", err))
	}

	return s.post(ctx, tx, amount, description, domain.EntryRefDeposit, []posting{
		{user.ID, domain.EntryTypeDebit},
		{domain.SystemCashReserveID, domain.EntryTypeCredit},
	})
}

// RecordWithdrawal moves cash from a user account back to the reserve.
func (s *LedgerServiceImpl) RecordWithdrawal(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error) {
	user, err := s.ledgerRepo.GetOrCreateForAccount(ctx, tx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("user ledger account: %w", err))
	}

	return s.post(ctx, tx, amount, description, domain.EntryRefWithdrawal, []posting{
		{user.ID, domain.EntryTypeCredit},
		{domain.SystemCashReserveID, domain.EntryTypeDebit},
	})
}

// RecordFee charges a user account and credits the fees system account.
func (s *LedgerServiceImpl) RecordFee(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerResult, error) {
	user, err := s.ledgerRepo.GetOrCreateForAccount(ctx, tx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("user ledger account: %w", err))
	}

	return s.post(ctx, tx, amount, description, domain.EntryRefFee, []posting{
		{user.ID, domain.EntryTypeCredit},
		{domain.SystemFeesID, domain.EntryTypeDebit},
	})
}

// Reverse writes offsetting entries for a committed transaction group and
// flags the originals. Repeated reversal of the same group is rejected.
func (s *LedgerServiceImpl) Reverse(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID, reason string) (*domain.LedgerResult, error) {
	originals, err := s.ledgerRepo.GetEntriesByTransaction(ctx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load original entries: %w", err))
	}
	if len(originals) == 0 {
		return nil, apperror.ErrNotFound("ledger transaction")
	}
	for _, e := range originals {
		if e.IsReversed {
			return nil, apperror.ErrAlreadyReversed()
		}
	}

	reversalID := uuid.New()
	now := time.Now().UTC()
	// Every reversal entry names the group it undoes, in the annotation and
	// in the reference pair.
	description := fmt.Sprintf("Reversal of %s: %s", transactionID, reason)

	result := &domain.LedgerResult{
		TransactionID: reversalID,
		TotalDebits:   decimal.Zero,
		TotalCredits:  decimal.Zero,
	}
	for _, orig := range originals {
		entry := domain.LedgerEntry{
			ID:              uuid.New(),
			TransactionID:   reversalID,
			LedgerAccountID: orig.LedgerAccountID,
			EntryType:       orig.EntryType.Opposite(),
			Amount:          orig.Amount,
			Currency:        orig.Currency,
			Description:     description,
			ReferenceType:   domain.EntryRefReversal,
			ReferenceID:     &transactionID,
			CreatedAt:       now,
		}
		if err := s.ledgerRepo.CreateEntry(ctx, tx, &entry); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("write reversal entry: %w", err))
		}
		result.Entries = append(result.Entries, entry)
		s.tally(result, entry)
	}

	if err := s.ledgerRepo.MarkReversed(ctx, tx, transactionID, reversalID); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("flag originals: %w", err))
	}

	if err := s.verifyWithinTx(ctx, tx, result); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("original_transaction_id", transactionID.String()).
		Str("reversal_transaction_id", reversalID.String()).
		Int("entries", len(result.Entries)).
		Msg("ledger transaction reversed")

	return result, nil
}

// VerifyTransaction checks one group's debits against its credits within the
// open transaction.
func (s *LedgerServiceImpl) VerifyTransaction(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID) (*domain.BalanceVerification, error) {
	debits, credits, count, err := s.ledgerRepo.SumsByTransactionTx(ctx, tx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("sum transaction entries: %w", err))
	}

	return &domain.BalanceVerification{
		TransactionID: &transactionID,
		TotalDebits:   debits,
		TotalCredits:  credits,
		Difference:    debits.Sub(credits),
		EntryCount:    count,
		IsBalanced:    domain.Balanced(debits, credits),
		CheckedAt:     time.Now().UTC(),
	}, nil
}

// post writes equal-amount entries for every leg of a movement, then
// re-reads them to confirm the group balances before the caller commits.
func (s *LedgerServiceImpl) post(ctx context.Context, tx pgx.Tx, amount decimal.Decimal, description, refType string, postings []posting) (*domain.LedgerResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	groupID := uuid.New()
	now := time.Now().UTC()

	result := &domain.LedgerResult{
		TransactionID: groupID,
		TotalDebits:   decimal.Zero,
		TotalCredits:  decimal.Zero,
	}
	for _, p := range postings {
		entry := domain.LedgerEntry{
			ID:              uuid.New(),
			TransactionID:   groupID,
			LedgerAccountID: p.ledgerAccountID,
			EntryType:       p.entryType,
			Amount:          amount,
			Currency:        defaultCurrency,
			Description:     description,
			ReferenceType:   refType,
			CreatedAt:       now,
		}
		if err := s.ledgerRepo.CreateEntry(ctx, tx, &entry); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("write ledger entry: %w", err))
		}
		result.Entries = append(result.Entries, entry)
		s.tally(result, entry)
	}

	if err := s.verifyWithinTx(ctx, tx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *LedgerServiceImpl) tally(result *domain.LedgerResult, entry domain.LedgerEntry) {
	if entry.EntryType == domain.EntryTypeDebit {
		result.TotalDebits = result.TotalDebits.Add(entry.Amount)
	} else {
		result.TotalCredits = result.TotalCredits.Add(entry.Amount)
	}
}

func (s *LedgerServiceImpl) verifyWithinTx(ctx context.Context, tx pgx.Tx, result *domain.LedgerResult) error {
	verification, err := s.VerifyTransaction(ctx, tx, result.TransactionID)
	if err != nil {
		return err
	}
	if !verification.IsBalanced {
		s.log.Error().
			Str("transaction_id", result.TransactionID.String()).
			Str("debits", verification.TotalDebits.String()).
			Str("credits", verification.TotalCredits.String()).
			Msg("ledger transaction failed balance verification")
		return apperror.ErrIntegrityViolation(fmt.Errorf(
			"transaction %s unbalanced: debits %s credits %s",
			result.TransactionID, verification.TotalDebits, verification.TotalCredits,
		))
	}
	result.Verified = true
	return nil
}
