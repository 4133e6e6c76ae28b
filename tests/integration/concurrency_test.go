package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentDeposits fires 50 concurrent deposits with distinct
// idempotency keys at one account and verifies the cached balance and the
// ledger agree on the total afterwards.
func TestConcurrentDeposits(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	account := app.seedAccount(t, "4921")
	token := app.login(t, account.ID, "4921")
	path := "/api/v1/accounts/" + account.ID.String() + "/deposit"

	concurrency := 50

	var wg sync.WaitGroup
	var successCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			code, _ := app.do(t, http.MethodPost, path, token, fmt.Sprintf("dep-%d", idx),
				map[string]string{"amount": "10.00"})
			if code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(concurrency), successCount.Load())

	got, err := app.accountRepo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("500.00")), "balance: %s", got.Balance)

	// Every deposit wrote one balanced debit/credit pair.
	debits, credits, count, err := app.ledgerRepo.GlobalSums(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2*concurrency, count)
	assert.True(t, debits.Equal(credits), "debits %s vs credits %s", debits, credits)
	assert.True(t, debits.Equal(decimal.RequireFromString("500.00")))
}

// TestConcurrentReadsDuringWrites interleaves history reads with deposits to
// shake out data races in the request path.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	account := app.seedAccount(t, "4921")
	token := app.login(t, account.ID, "4921")
	base := "/api/v1/accounts/" + account.ID.String()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			code, _ := app.do(t, http.MethodPost, base+"/deposit", token, fmt.Sprintf("mix-%d", idx),
				map[string]string{"amount": "5.00"})
			assert.Equal(t, http.StatusCreated, code)
		}(i)
		go func() {
			defer wg.Done()
			code, _ := app.do(t, http.MethodGet, base+"/transactions?limit=10", token, "", nil)
			assert.Equal(t, http.StatusOK, code)
		}()
	}
	wg.Wait()

	got, err := app.accountRepo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("100.00")), "balance: %s", got.Balance)
}
