package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type accountHandler struct {
	chartService portssvc.ChartOfAccountsSvc
}

func registerAccountRoutes(tenant *gin.RouterGroup, chartService portssvc.ChartOfAccountsSvc) {
	h := &accountHandler{chartService: chartService}
	tenant.GET("/accounts/:code", h.resolveAccount)
}

// resolveAccount godoc
// @Summary Resolve an account code
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to resolve account"
// @Router /tenants/{tenant_id}/accounts/{code} [get]
func (h *accountHandler) resolveAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.chartService.ResolveAccount(c.Request.Context(), c.Param("tenant_id"), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "resolve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
