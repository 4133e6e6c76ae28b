package handler

import (
	"strconv"
	"time"

	"aura-bank-core/internal/adapter/http/dto"
	"aura-bank-core/internal/adapter/http/middleware"
	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// clientIdempotencyKey resolves the caller's key: the Idempotency-Key header
// wins, the body field covers clients that cannot set custom headers.
func clientIdempotencyKey(c *gin.Context, bodyKey string) string {
	if key := c.GetHeader(middleware.HeaderIdempotencyKey); key != "" {
		return key
	}
	return bodyKey
}

func toAccountResponse(a *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:            a.ID.String(),
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance.StringFixed(2),
		Active:        a.Active,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

func toCardResponse(card *domain.Card) dto.CardResponse {
	return dto.CardResponse{
		ID:         card.ID.String(),
		AccountID:  card.AccountID.String(),
		Status:     string(card.Status),
		DailyLimit: card.DailyLimit.StringFixed(2),
		CreatedAt:  card.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionResponse(t *domain.TransactionRecord) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:                  t.ID.String(),
		AccountID:           t.AccountID.String(),
		Kind:                string(t.Kind),
		Amount:              t.Amount.StringFixed(2),
		Currency:            t.Currency,
		Description:         t.Description,
		Category:            t.Category,
		CategoryConfidence:  t.CategoryConfidence,
		LedgerTransactionID: t.LedgerTransactionID.String(),
		CreatedAt:           t.CreatedAt.Format(time.RFC3339),
	}
	if t.CounterpartyID != nil {
		s := t.CounterpartyID.String()
		resp.CounterpartyID = &s
	}
	return resp
}

func toVerificationResponse(v *domain.BalanceVerification) dto.VerificationResponse {
	resp := dto.VerificationResponse{
		TotalDebits:  v.TotalDebits.StringFixed(2),
		TotalCredits: v.TotalCredits.StringFixed(2),
		Difference:   v.Difference.StringFixed(2),
		EntryCount:   v.EntryCount,
		IsBalanced:   v.IsBalanced,
		CheckedAt:    v.CheckedAt.Format(time.RFC3339),
	}
	if v.TransactionID != nil {
		s := v.TransactionID.String()
		resp.TransactionID = &s
	}
	return resp
}

func toDiscrepancyResponse(d *domain.BalanceDiscrepancy) dto.DiscrepancyResponse {
	return dto.DiscrepancyResponse{
		AccountID:     d.AccountID.String(),
		AccountNumber: d.AccountNumber,
		StoredBalance: d.StoredBalance.StringFixed(2),
		LedgerBalance: d.LedgerBalance.StringFixed(2),
		Difference:    d.Difference.StringFixed(2),
	}
}

// respondMovement renders a movement outcome, marking replays so clients can
// distinguish a fresh execution from a cached one.
func respondMovement(c *gin.Context, outcome *ports.TransferOutcome) {
	if outcome.Replayed {
		response.Replayed(c, toTransactionResponse(outcome.Transaction), outcome.OriginalTimestamp)
		return
	}
	response.Created(c, toTransactionResponse(outcome.Transaction))
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
