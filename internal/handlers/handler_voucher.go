package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to journal vouchers.
type voucherHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newVoucherHandler(journalService portssvc.JournalSvcFacade) *voucherHandler {
	return &voucherHandler{journalService: journalService}
}

// registerVoucherRoutes registers the posting route on v1 and the tenant-scoped voucher routes.
func registerVoucherRoutes(v1 *gin.RouterGroup, tenant *gin.RouterGroup, journalService portssvc.JournalSvcFacade, writeGuards []gin.HandlerFunc) {
	h := newVoucherHandler(journalService)

	v1.POST("/vouchers", guarded(writeGuards, h.postVoucher)...)

	vouchers := tenant.Group("/vouchers")
	{
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucher_id", h.getVoucher)
		vouchers.POST("/:voucher_id/submit", guarded(writeGuards, h.submitVoucher)...)
		vouchers.POST("/:voucher_id/approve", guarded(writeGuards, h.approveVoucher)...)
		vouchers.POST("/:voucher_id/reject", guarded(writeGuards, h.rejectVoucher)...)
	}
}

// postVoucher godoc
// @Summary Post a journal voucher
// @Description Validates the lines and atomically stores the voucher, its lines and an audit entry
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.PostVoucherRequest true "Voucher header and lines"
// @Param   X-Tenant-ID header string false "Tenant the caller acts for"
// @Success 201 {object} dto.PostVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid JSON payload or field error"
// @Failure 403 {object} dto.ErrorResponse "Tenant mismatch"
// @Failure 422 {object} dto.ValidationFailedResponse "Balance validation failed"
// @Failure 500 {object} dto.ErrorResponse "Failed to post voucher"
// @Router /vouchers [post]
func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostVoucher", slog.String("error", err.Error()))
		badRequest(c, bindErrorMessage(err))
		return
	}

	if middleware.TenantMismatch(c, req.TenantID) {
		logger.Warn("Tenant header does not match body", slog.String("tenant_id", req.TenantID))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Success: false, Error: "Forbidden"})
		return
	}

	middleware.SetActorID(c, req.ActorID)
	middleware.SetTenantID(c, req.TenantID)
	logger = logger.With(slog.String("tenant_id", req.TenantID), slog.String("actor_id", req.ActorID))

	header, err := req.ToHeaderInput()
	if err != nil {
		respondError(c, logger, err, "post voucher")
		return
	}

	voucher, err := h.journalService.PostVoucher(c.Request.Context(), req.TenantID, req.ActorID, header, req.ToDomainLines())
	if err != nil {
		respondError(c, logger, err, "post voucher")
		return
	}

	logger.Info("Voucher posted", slog.String("voucher_id", voucher.VoucherID), slog.String("voucher_number", voucher.VoucherNumber))
	c.JSON(http.StatusCreated, dto.PostVoucherResponse{
		Success:       true,
		VoucherID:     voucher.VoucherID,
		VoucherNumber: voucher.VoucherNumber,
	})
}

// getVoucher godoc
// @Summary Get a voucher with its lines
// @Tags vouchers
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get voucher"
// @Router /tenants/{tenant_id}/vouchers/{voucher_id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	voucherID := c.Param("voucher_id")

	voucher, err := h.journalService.GetVoucher(c.Request.Context(), tenantID, voucherID)
	if err != nil {
		respondError(c, logger, err, "get voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List a tenant's vouchers
// @Description Newest first, paginated with an opaque nextToken
// @Tags vouchers
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Filter by status"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Failed to list vouchers"
// @Router /tenants/{tenant_id}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListVouchers", slog.String("error", err.Error()))
		badRequest(c, bindErrorMessage(err))
		return
	}

	resp, err := h.journalService.ListVouchers(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, logger, err, "list vouchers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// submitVoucher godoc
// @Summary Submit a draft voucher for approval
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   voucher_id path string true "Voucher ID"
// @Param   action body dto.WorkflowActionRequest true "Actor and optional details"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /tenants/{tenant_id}/vouchers/{voucher_id}/submit [post]
func (h *voucherHandler) submitVoucher(c *gin.Context) {
	h.runWorkflow(c, "submit voucher", h.journalService.SubmitVoucher)
}

// approveVoucher godoc
// @Summary Approve a pending voucher, posting it
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   voucher_id path string true "Voucher ID"
// @Param   action body dto.WorkflowActionRequest true "Actor and optional details"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /tenants/{tenant_id}/vouchers/{voucher_id}/approve [post]
func (h *voucherHandler) approveVoucher(c *gin.Context) {
	h.runWorkflow(c, "approve voucher", h.journalService.ApproveVoucher)
}

// rejectVoucher godoc
// @Summary Reject a pending voucher
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   voucher_id path string true "Voucher ID"
// @Param   action body dto.WorkflowActionRequest true "Actor and optional details"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /tenants/{tenant_id}/vouchers/{voucher_id}/reject [post]
func (h *voucherHandler) rejectVoucher(c *gin.Context) {
	h.runWorkflow(c, "reject voucher", h.journalService.RejectVoucher)
}

type workflowFunc func(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error)

func (h *voucherHandler) runWorkflow(c *gin.Context, action string, fn workflowFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	voucherID := c.Param("voucher_id")

	var req dto.WorkflowActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for workflow action", slog.String("action", action), slog.String("error", err.Error()))
		badRequest(c, bindErrorMessage(err))
		return
	}
	middleware.SetActorID(c, req.ActorID)

	voucher, err := fn(c.Request.Context(), tenantID, voucherID, req.ActorID, req.Details)
	if err != nil {
		respondError(c, logger, err, action)
		return
	}

	logger.Info("Workflow action applied", slog.String("action", action), slog.String("voucher_id", voucherID), slog.String("status", string(voucher.Status)))
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
