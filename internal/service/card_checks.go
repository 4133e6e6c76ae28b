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
	"github.com/shopspring/decimal"
)

// enforceCardLimits applies card-level spending rules to an outgoing
// movement. Accounts without a card are unrestricted. Runs under the
// account's row lock, so concurrent spends cannot both slip under the
// daily limit.
func enforceCardLimits(ctx context.Context, tx pgx.Tx, cards ports.CardRepository, txns ports.TransactionRepository, accountID uuid.UUID, amount decimal.Decimal) error {
	card, err := cards.GetByAccountID(ctx, accountID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("load card: %w", err))
	}
	if card == nil {
		return nil
	}
	if !card.IsUsable() {
		return apperror.ErrCardFrozen()
	}
	if card.DailyLimit.IsZero() {
		return nil
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	spent, err := txns.SumOutgoingSince(ctx, tx, accountID, midnight)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("sum daily spend: %w", err))
	}
	if spent.Add(amount).GreaterThan(card.DailyLimit) {
		return apperror.ErrDailyLimitExceeded()
	}
	return nil
}

// newHistoryRecord builds one customer-facing history row.
func newHistoryRecord(accountID uuid.UUID, kind domain.TransactionKind, amount decimal.Decimal, description string, ledgerTxID uuid.UUID, referenceID *string, counterparty *uuid.UUID, at time.Time) *domain.TransactionRecord {
	return &domain.TransactionRecord{
		ID:                  uuid.New(),
		AccountID:           accountID,
		Kind:                kind,
		Amount:              amount,
		Currency:            defaultCurrency,
		Description:         description,
		ReferenceID:         referenceID,
		LedgerTransactionID: ledgerTxID,
		CounterpartyID:      counterparty,
		CreatedAt:           at,
	}
}
