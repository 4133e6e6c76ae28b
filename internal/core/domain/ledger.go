package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerAccountType classifies a ledger account as user-owned or one of the
// bank's internal system accounts.
type LedgerAccountType string

const (
	LedgerAccountTypeUser            LedgerAccountType = "USER"
	LedgerAccountTypeCashReserve     LedgerAccountType = "SYSTEM_CASH_RESERVE"
	LedgerAccountTypeRevenue         LedgerAccountType = "SYSTEM_REVENUE"
	LedgerAccountTypeFees            LedgerAccountType = "SYSTEM_FEES"
	LedgerAccountTypeSuspense        LedgerAccountType = "SYSTEM_SUSPENSE"
	LedgerAccountTypeLoansReceivable LedgerAccountType = "SYSTEM_LOANS_RECEIVABLE"
)

// System ledger accounts are created at startup with fixed identifiers so
// entries written by different instances always reference the same rows.
var (
	SystemCashReserveID     = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	SystemRevenueID         = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	SystemFeesID            = uuid.MustParse("00000000-0000-4000-8000-000000000003")
	SystemSuspenseID        = uuid.MustParse("00000000-0000-4000-8000-000000000004")
	SystemLoansReceivableID = uuid.MustParse("00000000-0000-4000-8000-000000000005")
)

// SystemAccounts returns the fixed set of internal ledger accounts seeded at
// startup.
func SystemAccounts() []LedgerAccount {
	return []LedgerAccount{
		{ID: SystemCashReserveID, AccountType: LedgerAccountTypeCashReserve, Name: "Bank Cash Reserve", IsSystemAccount: true},
		{ID: SystemRevenueID, AccountType: LedgerAccountTypeRevenue, Name: "Bank Revenue", IsSystemAccount: true},
		{ID: SystemFeesID, AccountType: LedgerAccountTypeFees, Name: "Bank Fees Collected", IsSystemAccount: true},
		{ID: SystemSuspenseID, AccountType: LedgerAccountTypeSuspense, Name: "Suspense", IsSystemAccount: true},
		{ID: SystemLoansReceivableID, AccountType: LedgerAccountTypeLoansReceivable, Name: "Loans Receivable", IsSystemAccount: true},
	}
}

// LedgerAccount is a double-entry bookkeeping account. User accounts hold a
// ReferenceID pointing at the bank Account they mirror; system accounts do
// not.
type LedgerAccount struct {
	ID              uuid.UUID         `json:"id"`
	AccountType     LedgerAccountType `json:"account_type"`
	ReferenceID     *uuid.UUID        `json:"reference_id,omitempty"`
	Name            string            `json:"name"`
	IsSystemAccount bool              `json:"is_system_account"`
	CreatedAt       time.Time         `json:"created_at"`
}

// EntryType is the side of a double-entry posting.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// Opposite returns the other side of the posting.
func (e EntryType) Opposite() EntryType {
	if e == EntryTypeDebit {
		return EntryTypeCredit
	}
	return EntryTypeDebit
}

// Entry reference types name the movement kind that produced a posting.
// Reversal entries additionally carry the reversed group's id in ReferenceID.
const (
	EntryRefTransfer   = "TRANSFER"
	EntryRefDeposit    = "DEPOSIT"
	EntryRefWithdrawal = "WITHDRAWAL"
	EntryRefFee        = "FEE"
	EntryRefReversal   = "REVERSAL"
)

// LedgerEntry is a single immutable posting. Amount is always positive; the
// sign is carried by EntryType. Entries belonging to one logical movement
// share a TransactionID.
type LedgerEntry struct {
	ID              uuid.UUID       `json:"id"`
	TransactionID   uuid.UUID       `json:"transaction_id"`
	LedgerAccountID uuid.UUID       `json:"ledger_account_id"`
	EntryType       EntryType       `json:"entry_type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description"`
	ReferenceType   string          `json:"reference_type"`
	ReferenceID     *uuid.UUID      `json:"reference_id,omitempty"`
	IsReversed      bool            `json:"is_reversed"`
	ReversedBy      *uuid.UUID      `json:"reversed_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SignedAmount maps the entry onto a single number line: debits are
// positive, credits negative. A balanced transaction's signed amounts sum
// to zero.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.EntryType == EntryTypeDebit {
		return e.Amount
	}
	return e.Amount.Neg()
}

// LedgerTolerance is the maximum absolute difference between total debits
// and total credits a transaction may carry before it is rejected as
// unbalanced. Amounts are stored to two decimal places.
var LedgerTolerance = decimal.New(1, -2)

// Balanced reports whether debits and credits agree within LedgerTolerance.
func Balanced(debits, credits decimal.Decimal) bool {
	return debits.Sub(credits).Abs().LessThan(LedgerTolerance)
}

// LedgerResult summarizes the postings written for one logical movement.
type LedgerResult struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Entries       []LedgerEntry   `json:"entries"`
	TotalDebits   decimal.Decimal `json:"total_debits"`
	TotalCredits  decimal.Decimal `json:"total_credits"`
	Verified      bool            `json:"verified"`
}

// BalanceVerification is the outcome of a debit/credit balance check, either
// for a single transaction group or for the whole ledger.
type BalanceVerification struct {
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
	TotalDebits   decimal.Decimal `json:"total_debits"`
	TotalCredits  decimal.Decimal `json:"total_credits"`
	Difference    decimal.Decimal `json:"difference"`
	EntryCount    int             `json:"entry_count"`
	IsBalanced    bool            `json:"is_balanced"`
	CheckedAt     time.Time       `json:"checked_at"`
}

// BalanceDiscrepancy reports an account whose cached balance disagrees with
// the balance derived from its ledger entries.
type BalanceDiscrepancy struct {
	AccountID     uuid.UUID       `json:"account_id"`
	AccountNumber string          `json:"account_number"`
	StoredBalance decimal.Decimal `json:"stored_balance"`
	LedgerBalance decimal.Decimal `json:"ledger_balance"`
	Difference    decimal.Decimal `json:"difference"`
}
