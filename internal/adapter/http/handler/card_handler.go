package handler

import (
	"aura-bank-core/internal/adapter/http/dto"
	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"
	"aura-bank-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardHandler handles debit card management.
type CardHandler struct {
	cardSvc    ports.CardService
	accountSvc ports.AccountService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardSvc ports.CardService, accountSvc ports.AccountService) *CardHandler {
	return &CardHandler{cardSvc: cardSvc, accountSvc: accountSvc}
}

// Issue handles POST /api/v1/cards.
func (h *CardHandler) Issue(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	account, err := h.accountSvc.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if account.UserID != userID {
		response.Error(c, apperror.ErrNotFound("account"))
		return
	}

	dailyLimit := decimal.Zero
	if req.DailyLimit != "" {
		dailyLimit = dto.ParseMoney(req.DailyLimit)
	}

	card, err := h.cardSvc.IssueCard(c.Request.Context(), accountID, req.PIN, dailyLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toCardResponse(card))
}

// SetStatus handles PUT /api/v1/cards/:id/status.
func (h *CardHandler) SetStatus(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid card id"))
		return
	}

	var req dto.CardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.cardSvc.SetCardStatus(c.Request.Context(), cardID, domain.CardStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": cardID.String(), "status": req.Status})
}
