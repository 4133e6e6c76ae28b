package handler

import (
	"aura-bank-core/internal/adapter/http/dto"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"
	"aura-bank-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles categorized spending endpoints.
type ExpenseHandler struct {
	expenseSvc ports.ExpenseService
	accountSvc ports.AccountService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseSvc ports.ExpenseService, accountSvc ports.AccountService) *ExpenseHandler {
	return &ExpenseHandler{expenseSvc: expenseSvc, accountSvc: accountSvc}
}

// Create handles POST /api/v1/expenses.
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ExpenseRequest
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

	outcome, err := h.expenseSvc.Create(
		c.Request.Context(), accountID, dto.ParseMoney(req.Amount), req.Description,
		clientIdempotencyKey(c, req.IdempotencyKey),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondMovement(c, outcome)
}

// Preview handles POST /api/v1/expenses/preview. It classifies a description
// without recording any movement.
func (h *ExpenseHandler) Preview(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	category, err := h.expenseSvc.Preview(c.Request.Context(), req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, category)
}
