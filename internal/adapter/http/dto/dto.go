package dto

// SessionRequest is the request body for card-and-PIN login.
type SessionRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	PIN       string `json:"pin" binding:"required,min=4,max=8,numeric"`
}

// SessionResponse is the response body for successful login.
type SessionResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TransferRequest is the request body for a peer-to-peer transfer. The
// recipient is addressed by account number; the sender may confirm with the
// card PIN. idempotency_key mirrors the Idempotency-Key header for clients
// that cannot set custom headers.
type TransferRequest struct {
	FromAccountID   string `json:"from_account_id" binding:"required,uuid"`
	ToAccountNumber string `json:"to_account_number" binding:"required,max=32"`
	Amount          string `json:"amount" binding:"required,money"`
	Description     string `json:"description" binding:"max=255"`
	PIN             string `json:"pin" binding:"omitempty,min=4,max=8,numeric"`
	IdempotencyKey  string `json:"idempotency_key" binding:"omitempty,max=64"`
}

// ReverseRequest is the request body for reversing a committed movement.
type ReverseRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// TellerRequest is the request body for deposits and withdrawals.
type TellerRequest struct {
	Amount         string `json:"amount" binding:"required,money"`
	IdempotencyKey string `json:"idempotency_key" binding:"omitempty,max=64"`
}

// ExpenseRequest is the request body for a categorized spend.
type ExpenseRequest struct {
	AccountID      string `json:"account_id" binding:"required,uuid"`
	Amount         string `json:"amount" binding:"required,money"`
	Description    string `json:"description" binding:"required,max=255"`
	IdempotencyKey string `json:"idempotency_key" binding:"omitempty,max=64"`
}

// FeeRequest is the request body for charging a fee.
type FeeRequest struct {
	Amount      string `json:"amount" binding:"required,money"`
	Description string `json:"description" binding:"required,max=255"`
}

// IssueCardRequest is the request body for issuing a debit card.
type IssueCardRequest struct {
	AccountID  string `json:"account_id" binding:"required,uuid"`
	PIN        string `json:"pin" binding:"required,min=4,max=8,numeric"`
	DailyLimit string `json:"daily_limit" binding:"omitempty,money"`
}

// CardStatusRequest is the request body for freezing/unfreezing/blocking.
type CardStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE FROZEN BLOCKED"`
}

// PreviewRequest is the request body for a category preview.
type PreviewRequest struct {
	Description string `json:"description" binding:"required,max=255"`
}

// AccountResponse is the response body for account queries.
type AccountResponse struct {
	ID            string `json:"id"`
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"created_at"`
}

// CardResponse is the response body for card operations.
type CardResponse struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Status     string `json:"status"`
	DailyLimit string `json:"daily_limit"`
	CreatedAt  string `json:"created_at"`
}

// TransactionResponse is the response body for history rows and movement
// results.
type TransactionResponse struct {
	ID                  string   `json:"id"`
	AccountID           string   `json:"account_id"`
	Kind                string   `json:"kind"`
	Amount              string   `json:"amount"`
	Currency            string   `json:"currency"`
	Description         string   `json:"description"`
	Category            *string  `json:"category,omitempty"`
	CategoryConfidence  *float64 `json:"category_confidence,omitempty"`
	CounterpartyID      *string  `json:"counterparty_id,omitempty"`
	LedgerTransactionID string   `json:"ledger_transaction_id"`
	CreatedAt           string   `json:"created_at"`
}

// VerificationResponse is the response body for audit checks.
type VerificationResponse struct {
	TransactionID *string `json:"transaction_id,omitempty"`
	TotalDebits   string  `json:"total_debits"`
	TotalCredits  string  `json:"total_credits"`
	Difference    string  `json:"difference"`
	EntryCount    int     `json:"entry_count"`
	IsBalanced    bool    `json:"is_balanced"`
	CheckedAt     string  `json:"checked_at"`
}

// DiscrepancyResponse is one row of the audit discrepancy report.
type DiscrepancyResponse struct {
	AccountID     string `json:"account_id"`
	AccountNumber string `json:"account_number"`
	StoredBalance string `json:"stored_balance"`
	LedgerBalance string `json:"ledger_balance"`
	Difference    string `json:"difference"`
}
