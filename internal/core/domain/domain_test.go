package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCard_IsUsable(t *testing.T) {
	tests := []struct {
		name   string
		status CardStatus
		want   bool
	}{
		{"active", CardStatusActive, true},
		{"frozen", CardStatusFrozen, false},
		{"blocked", CardStatusBlocked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Card{Status: tt.status}
			assert.Equal(t, tt.want, c.IsUsable())
		})
	}
}

func TestAccount_CanDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		active  bool
		want    bool
	}{
		{"sufficient", "100.00", "50.00", true, true},
		{"exact", "50.00", "50.00", true, true},
		{"insufficient", "49.99", "50.00", true, false},
		{"inactive", "100.00", "50.00", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Account{
				Balance: decimal.RequireFromString(tt.balance),
				Active:  tt.active,
			}
			assert.Equal(t, tt.want, a.CanDebit(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("25.50")

	debit := &LedgerEntry{EntryType: EntryTypeDebit, Amount: amount}
	assert.True(t, debit.SignedAmount().Equal(amount))

	credit := &LedgerEntry{EntryType: EntryTypeCredit, Amount: amount}
	assert.True(t, credit.SignedAmount().Equal(amount.Neg()))
}

func TestEntryType_Opposite(t *testing.T) {
	assert.Equal(t, EntryTypeCredit, EntryTypeDebit.Opposite())
	assert.Equal(t, EntryTypeDebit, EntryTypeCredit.Opposite())
}

func TestBalanced(t *testing.T) {
	tests := []struct {
		name    string
		debits  string
		credits string
		want    bool
	}{
		{"equal", "100.00", "100.00", true},
		{"within tolerance", "100.005", "100.00", true},
		{"off by a cent", "100.01", "100.00", false},
		{"off by a dollar", "101.00", "100.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Balanced(
				decimal.RequireFromString(tt.debits),
				decimal.RequireFromString(tt.credits),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidIdempotencyKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"simple", "abc123", true},
		{"uuid style", "550e8400-e29b-41d4-a716-446655440000", true},
		{"underscores", "retry_attempt_2", true},
		{"max length", strings.Repeat("a", 64), true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 65), false},
		{"colon", "a:b", false},
		{"space", "a b", false},
		{"unicode", "clé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidIdempotencyKey(tt.key))
		})
	}
}

func TestBuildIdempotencyKey(t *testing.T) {
	accountID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	key := BuildIdempotencyKey(accountID, "transfer", "client-key-1")
	assert.Equal(t, "11111111-1111-1111-1111-111111111111:transfer:client-key-1", key)
}

func TestTransactionRecord_IsOutgoing(t *testing.T) {
	tests := []struct {
		kind TransactionKind
		want bool
	}{
		{TransactionKindTransferOut, true},
		{TransactionKindWithdrawal, true},
		{TransactionKindFee, true},
		{TransactionKindTransferIn, false},
		{TransactionKindDeposit, false},
		{TransactionKindReversal, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			rec := &TransactionRecord{Kind: tt.kind}
			assert.Equal(t, tt.want, rec.IsOutgoing())
		})
	}
}

func TestSystemAccounts(t *testing.T) {
	accounts := SystemAccounts()
	assert.Len(t, accounts, 5)

	seen := make(map[uuid.UUID]bool)
	for _, a := range accounts {
		assert.True(t, a.IsSystemAccount)
		assert.False(t, seen[a.ID], "duplicate system account id")
		seen[a.ID] = true
	}
	assert.True(t, seen[SystemCashReserveID])
	assert.True(t, seen[SystemRevenueID])
}
