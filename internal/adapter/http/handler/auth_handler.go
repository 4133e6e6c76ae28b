package handler

import (
	"aura-bank-core/internal/adapter/http/dto"
	"aura-bank-core/internal/adapter/http/middleware"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"
	"aura-bank-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles card-and-PIN session login.
type AuthHandler struct {
	cardSvc ports.CardService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cardSvc ports.CardService) *AuthHandler {
	return &AuthHandler{cardSvc: cardSvc}
}

// CreateSession handles POST /api/v1/auth/session.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	token, expiresAt, err := h.cardSvc.Authenticate(c.Request.Context(), accountID, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SessionResponse{
		Token:  token,
		Expiry: expiresAt.Unix(),
	})
}

// currentUserID pulls the authenticated user out of the gin context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
