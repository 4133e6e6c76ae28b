package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind is the customer-facing classification of a history row.
type TransactionKind string

const (
	TransactionKindTransferIn  TransactionKind = "TRANSFER_IN"
	TransactionKindTransferOut TransactionKind = "TRANSFER_OUT"
	TransactionKindDeposit     TransactionKind = "DEPOSIT"
	TransactionKindWithdrawal  TransactionKind = "WITHDRAWAL"
	TransactionKindFee         TransactionKind = "FEE"
	TransactionKindReversal    TransactionKind = "REVERSAL"
)

// TransactionRecord is one row of an account's transaction history. It is a
// denormalized view over the ledger: LedgerTransactionID links back to the
// authoritative postings. ReferenceID carries the client idempotency key for
// externally initiated movements and is unique per account.
type TransactionRecord struct {
	ID                  uuid.UUID       `json:"id"`
	AccountID           uuid.UUID       `json:"account_id"`
	Kind                TransactionKind `json:"kind"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	Description         string          `json:"description"`
	Category            *string         `json:"category,omitempty"`
	CategoryConfidence  *float64        `json:"category_confidence,omitempty"`
	ReferenceID         *string         `json:"reference_id,omitempty"`
	LedgerTransactionID uuid.UUID       `json:"ledger_transaction_id"`
	CounterpartyID      *uuid.UUID      `json:"counterparty_id,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// IsOutgoing reports whether the record reduces the account's balance.
func (t *TransactionRecord) IsOutgoing() bool {
	switch t.Kind {
	case TransactionKindTransferOut, TransactionKindWithdrawal, TransactionKindFee:
		return true
	}
	return false
}
