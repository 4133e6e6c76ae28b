package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a customer-facing bank account. Its Balance column is a cached
// materialization of the account's ledger entries; the ledger is the source
// of truth and the verifier reconciles the two.
type Account struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CanDebit reports whether the account may be debited for the given amount.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Active && a.Balance.GreaterThanOrEqual(amount)
}
