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
)

// VerifierServiceImpl implements ports.VerifierService: the audit surface
// that proves the ledger still balances and the cached account balances
// still agree with it.
type VerifierServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewVerifierService creates a new VerifierServiceImpl.
func NewVerifierService(
	accountRepo ports.AccountRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *VerifierServiceImpl {
	return &VerifierServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		transactor:  transactor,
		log:         log,
	}
}

// VerifyTransaction checks a committed transaction group's debits against
// its credits.
func (s *VerifierServiceImpl) VerifyTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.BalanceVerification, error) {
	debits, credits, count, err := s.ledgerRepo.SumsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("sum transaction entries: %w", err))
	}
	if count == 0 {
		return nil, apperror.ErrNotFound("ledger transaction")
	}

	v := &domain.BalanceVerification{
		TransactionID: &transactionID,
		TotalDebits:   debits,
		TotalCredits:  credits,
		Difference:    debits.Sub(credits),
		EntryCount:    count,
		IsBalanced:    domain.Balanced(debits, credits),
		CheckedAt:     time.Now().UTC(),
	}
	if !v.IsBalanced {
		s.log.Error().
			Str("transaction_id", transactionID.String()).
			Str("difference", v.Difference.String()).
			Msg("transaction failed balance verification")
	}
	return v, nil
}

// VerifyGlobal checks the entire ledger: total debits must equal total
// credits across every entry ever written.
func (s *VerifierServiceImpl) VerifyGlobal(ctx context.Context) (*domain.BalanceVerification, error) {
	debits, credits, count, err := s.ledgerRepo.GlobalSums(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("sum ledger: %w", err))
	}

	v := &domain.BalanceVerification{
		TotalDebits:  debits,
		TotalCredits: credits,
		Difference:   debits.Sub(credits),
		EntryCount:   count,
		IsBalanced:   domain.Balanced(debits, credits),
		CheckedAt:    time.Now().UTC(),
	}
	if !v.IsBalanced {
		s.log.Error().
			Str("difference", v.Difference.String()).
			Int("entries", count).
			Msg("global ledger failed balance verification")
	}
	return v, nil
}

// FindDiscrepancies compares every active account's cached balance against
// the balance derived from its ledger entries.
func (s *VerifierServiceImpl) FindDiscrepancies(ctx context.Context) ([]domain.BalanceDiscrepancy, error) {
	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list accounts: %w", err))
	}

	// A receiving-end ledger account may not exist yet for accounts that
	// never moved money; GetOrCreateForAccount needs a transaction, which
	// is rolled back so the scan stays read-only.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	var discrepancies []domain.BalanceDiscrepancy
	for _, acc := range accounts {
		la, err := s.ledgerRepo.GetOrCreateForAccount(ctx, dbTx, acc.ID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("ledger account for %s: %w", acc.ID, err))
		}
		derived, err := s.ledgerRepo.LedgerBalance(ctx, la.ID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("derive balance for %s: %w", acc.ID, err))
		}

		diff := acc.Balance.Sub(derived)
		if diff.Abs().LessThan(domain.LedgerTolerance) {
			continue
		}

		s.log.Error().
			Str("account_id", acc.ID.String()).
			Str("stored", acc.Balance.String()).
			Str("derived", derived.String()).
			Msg("account balance disagrees with ledger")

		discrepancies = append(discrepancies, domain.BalanceDiscrepancy{
			AccountID:     acc.ID,
			AccountNumber: acc.AccountNumber,
			StoredBalance: acc.Balance,
			LedgerBalance: derived,
			Difference:    diff,
		})
	}
	return discrepancies, nil
}
