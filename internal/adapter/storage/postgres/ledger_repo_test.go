package postgres

import (
	"context"
	"testing"
	"time"

	"aura-bank-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerAccountColumns() []string {
	return []string{"id", "account_type", "reference_id", "name", "is_system_account", "created_at"}
}

func TestLedgerRepo_EnsureSystemAccounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	for range domain.SystemAccounts() {
		mock.ExpectExec("INSERT INTO ledger_accounts").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	err = repo.EnsureSystemAccounts(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetOrCreateForAccount_Existing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	accountID := uuid.New()
	ledgerID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM ledger_accounts WHERE reference_id").
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows(ledgerAccountColumns()).AddRow(
			ledgerID, domain.LedgerAccountTypeUser, &accountID, "User Account", false, now,
		))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	la, err := repo.GetOrCreateForAccount(context.Background(), tx, accountID)
	require.NoError(t, err)
	assert.Equal(t, ledgerID, la.ID)
	assert.False(t, la.IsSystemAccount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetOrCreateForAccount_CreatesOnMiss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM ledger_accounts WHERE reference_id").
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows(ledgerAccountColumns()))
	mock.ExpectExec("INSERT INTO ledger_accounts").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	la, err := repo.GetOrCreateForAccount(context.Background(), tx, accountID)
	require.NoError(t, err)
	assert.Equal(t, domain.LedgerAccountTypeUser, la.AccountType)
	require.NotNil(t, la.ReferenceID)
	assert.Equal(t, accountID, *la.ReferenceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_CreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	entry := &domain.LedgerEntry{
		ID:              uuid.New(),
		TransactionID:   uuid.New(),
		LedgerAccountID: uuid.New(),
		EntryType:       domain.EntryTypeDebit,
		Amount:          decimal.RequireFromString("50.00"),
		Currency:        "USD",
		Description:     "transfer",
		ReferenceType:   domain.EntryRefTransfer,
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ledger_entries").
		WithArgs(
			entry.ID, entry.TransactionID, entry.LedgerAccountID, entry.EntryType,
			entry.Amount, entry.Currency, entry.Description, entry.ReferenceType,
			entry.ReferenceID, entry.IsReversed, entry.ReversedBy, entry.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateEntry(context.Background(), tx, entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_SumsByTransactionTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	txID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM ledger_entries WHERE transaction_id").
		WithArgs(txID).
		WillReturnRows(pgxmock.NewRows([]string{"debits", "credits", "count"}).AddRow(
			decimal.RequireFromString("100.00"), decimal.RequireFromString("100.00"), 2,
		))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	debits, credits, count, err := repo.SumsByTransactionTx(context.Background(), tx, txID)
	require.NoError(t, err)
	assert.True(t, debits.Equal(credits))
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GlobalSums(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("FROM ledger_entries").
		WillReturnRows(pgxmock.NewRows([]string{"debits", "credits", "count"}).AddRow(
			decimal.RequireFromString("5000.00"), decimal.RequireFromString("5000.00"), 42,
		))

	debits, credits, count, err := repo.GlobalSums(context.Background())
	require.NoError(t, err)
	assert.True(t, debits.Equal(credits))
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_MarkReversed_NoEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	txID := uuid.New()
	reversedBy := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ledger_entries SET is_reversed").
		WithArgs(reversedBy, txID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkReversed(context.Background(), tx, txID, reversedBy)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
