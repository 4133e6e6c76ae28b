package handler

import (
	"aura-bank-core/internal/adapter/http/dto"
	"aura-bank-core/internal/core/domain"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"
	"aura-bank-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account lifecycle and teller endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// OpenAccount handles POST /api/v1/accounts.
func (h *AccountHandler) OpenAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account, err := h.accountSvc.OpenAccount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toAccountResponse(account))
}

// GetAccount handles GET /api/v1/accounts/:id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, ok := h.ownedAccount(c)
	if !ok {
		return
	}
	response.OK(c, toAccountResponse(account))
}

// History handles GET /api/v1/accounts/:id/transactions.
func (h *AccountHandler) History(c *gin.Context) {
	account, ok := h.ownedAccount(c)
	if !ok {
		return
	}

	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	records, err := h.accountSvc.History(c.Request.Context(), account.ID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(records))
	for i := range records {
		items = append(items, toTransactionResponse(&records[i]))
	}
	response.OK(c, items)
}

// Deposit handles POST /api/v1/accounts/:id/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	account, ok := h.ownedAccount(c)
	if !ok {
		return
	}

	var req dto.TellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.accountSvc.Deposit(
		c.Request.Context(), account.ID, dto.ParseMoney(req.Amount),
		clientIdempotencyKey(c, req.IdempotencyKey),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondMovement(c, outcome)
}

// Withdraw handles POST /api/v1/accounts/:id/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	account, ok := h.ownedAccount(c)
	if !ok {
		return
	}

	var req dto.TellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.accountSvc.Withdraw(
		c.Request.Context(), account.ID, dto.ParseMoney(req.Amount), "",
		clientIdempotencyKey(c, req.IdempotencyKey),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondMovement(c, outcome)
}

// ChargeFee handles POST /api/v1/accounts/:id/fees.
func (h *AccountHandler) ChargeFee(c *gin.Context) {
	account, ok := h.ownedAccount(c)
	if !ok {
		return
	}

	var req dto.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.accountSvc.ChargeFee(c.Request.Context(), account.ID, dto.ParseMoney(req.Amount), req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(outcome.Transaction))
}

// ownedAccount loads the :id account and checks it belongs to the
// authenticated user. Foreign accounts read as not found.
func (h *AccountHandler) ownedAccount(c *gin.Context) (*domain.Account, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return nil, false
	}

	account, err := h.accountSvc.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if account.UserID != userID {
		response.Error(c, apperror.ErrNotFound("account"))
		return nil, false
	}
	return account, true
}
