package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler exposes the audit trail of vouchers and source documents.
type auditHandler struct {
	auditService portssvc.AuditTrailRecorderSvc
}

func registerAuditRoutes(tenant *gin.RouterGroup, auditService portssvc.AuditTrailRecorderSvc, writeGuards []gin.HandlerFunc) {
	h := &auditHandler{auditService: auditService}

	trail := tenant.Group("/audit-trail")
	{
		trail.GET("/:target_id", h.listEntries)
		trail.POST("/:target_id", guarded(writeGuards, h.appendEntry)...)
	}
}

// listEntries godoc
// @Summary List a target's audit trail
// @Description Entries are returned in position order
// @Tags audit
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   target_id path string true "Voucher or source document ID"
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list audit entries"
// @Router /tenants/{tenant_id}/audit-trail/{target_id} [get]
func (h *auditHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.auditService.ListEntries(c.Request.Context(), c.Param("tenant_id"), c.Param("target_id"))
	if err != nil {
		respondError(c, logger, err, "list audit entries")
		return
	}

	c.JSON(http.StatusOK, dto.ListAuditEntriesResponse{Entries: dto.ToAuditEntryResponses(entries)})
}

// appendEntry godoc
// @Summary Append an entry to a source document's audit trail
// @Tags audit
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   target_id path string true "Source document ID"
// @Param   entry body dto.AppendAuditEntryRequest true "Entry"
// @Success 201 {object} dto.AuditEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid JSON payload or field error"
// @Failure 500 {object} dto.ErrorResponse "Failed to append audit entry"
// @Router /tenants/{tenant_id}/audit-trail/{target_id} [post]
func (h *auditHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AppendAuditEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendAuditEntry", slog.String("error", err.Error()))
		badRequest(c, bindErrorMessage(err))
		return
	}
	middleware.SetActorID(c, req.ActorID)

	entry, err := h.auditService.Append(c.Request.Context(), c.Param("tenant_id"), c.Param("target_id"), req.ActorID, req.Action, req.Details)
	if err != nil {
		respondError(c, logger, err, "append audit entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuditEntryResponse(entry))
}
