package handler

import (
	"aura-bank-core/internal/adapter/http/dto"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/apperror"
	"aura-bank-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler exposes ledger integrity checks for back-office use.
type AuditHandler struct {
	verifierSvc ports.VerifierService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(verifierSvc ports.VerifierService) *AuditHandler {
	return &AuditHandler{verifierSvc: verifierSvc}
}

// VerifyLedger handles GET /api/v1/audit/ledger.
func (h *AuditHandler) VerifyLedger(c *gin.Context) {
	verification, err := h.verifierSvc.VerifyGlobal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toVerificationResponse(verification))
}

// VerifyTransaction handles GET /api/v1/audit/transactions/:id.
func (h *AuditHandler) VerifyTransaction(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transaction id"))
		return
	}

	verification, err := h.verifierSvc.VerifyTransaction(c.Request.Context(), transactionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toVerificationResponse(verification))
}

// Discrepancies handles GET /api/v1/audit/discrepancies.
func (h *AuditHandler) Discrepancies(c *gin.Context) {
	discrepancies, err := h.verifierSvc.FindDiscrepancies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DiscrepancyResponse, 0, len(discrepancies))
	for i := range discrepancies {
		items = append(items, toDiscrepancyResponse(&discrepancies[i]))
	}
	response.OK(c, items)
}
