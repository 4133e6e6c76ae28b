package handler

import (
	"aura-bank-core/internal/adapter/http/dto"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"
	"aura-bank-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles peer-to-peer transfers and reversals.
type TransferHandler struct {
	transferSvc ports.TransferService
	accountSvc  ports.AccountService
	expenseSvc  ports.ExpenseService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService, accountSvc ports.AccountService, expenseSvc ports.ExpenseService) *TransferHandler {
	return &TransferHandler{
		transferSvc: transferSvc,
		accountSvc:  accountSvc,
		expenseSvc:  expenseSvc,
	}
}

// Transfer handles POST /api/v1/transfers.
func (h *TransferHandler) Transfer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid from_account_id"))
		return
	}

	// Only the owner of the source account may move money out of it.
	from, err := h.accountSvc.GetAccount(c.Request.Context(), fromID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if from.UserID != userID {
		response.Error(c, apperror.ErrNotFound("account"))
		return
	}

	outcome, err := h.transferSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		FromAccountID:   fromID,
		ToAccountNumber: req.ToAccountNumber,
		Amount:          dto.ParseMoney(req.Amount),
		Description:     req.Description,
		IdempotencyKey:  clientIdempotencyKey(c, req.IdempotencyKey),
		PIN:             req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// Described transfers get a spending category in the background, same
	// as expenses. Replays were already categorized the first time around.
	if !outcome.Replayed && req.Description != "" && h.expenseSvc != nil {
		h.expenseSvc.CategorizeAsync(outcome.Transaction.ID)
	}

	respondMovement(c, outcome)
}

// Reverse handles POST /api/v1/transfers/:id/reverse.
func (h *TransferHandler) Reverse(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transaction id"))
		return
	}

	var req dto.ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.transferSvc.ReverseTransfer(c.Request.Context(), transactionID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(outcome.Transaction))
}
