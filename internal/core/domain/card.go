package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardStatus represents the state of a debit card.
type CardStatus string

const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusFrozen  CardStatus = "FROZEN"
	CardStatusBlocked CardStatus = "BLOCKED"
)

// Card is a debit card linked to an account. The PIN is stored as an
// argon2id hash and never leaves the service.
type Card struct {
	ID         uuid.UUID       `json:"id"`
	AccountID  uuid.UUID       `json:"account_id"`
	PINHash    string          `json:"-"`
	Status     CardStatus      `json:"status"`
	DailyLimit decimal.Decimal `json:"daily_limit"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsUsable returns true if the card may authorize spending.
func (c *Card) IsUsable() bool {
	return c.Status == CardStatusActive
}
