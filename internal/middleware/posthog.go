package middleware

import (
	"net/http"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// routeEvents names the analytics event for each tracked route. Reads and
// health checks are not tracked.
var routeEvents = map[string]string{
	"POST /api/v1/vouchers": "api_voucher_post",
	"POST /api/v1/tenants/:tenant_id/vouchers/:voucher_id/submit":  "api_voucher_submit",
	"POST /api/v1/tenants/:tenant_id/vouchers/:voucher_id/approve": "api_voucher_approve",
	"POST /api/v1/tenants/:tenant_id/vouchers/:voucher_id/reject":  "api_voucher_reject",
	"POST /api/v1/tenants/:tenant_id/audit-trail/:target_id":       "api_audit_append",
}

// PosthogMiddleware reports the outcome of write requests, grouped by tenant.
// Server errors are left to the logs.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, tracked := routeEvents[c.Request.Method+" "+c.FullPath()]
		if !tracked || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			return
		}

		actorID, ok := GetActorIDFromContext(c)
		if !ok {
			actorID = "anonymous"
		}

		props := map[string]any{
			"status_code": status,
			"accepted":    status < http.StatusBadRequest,
			"latency_ms":  time.Since(start).Milliseconds(),
		}
		if tenantID, ok := GetTenantIDFromContext(c); ok {
			props["tenant_id"] = tenantID
			props["$groups"] = map[string]any{"tenant": tenantID}
		}
		if voucherID := c.Param("voucher_id"); voucherID != "" {
			props["voucher_id"] = voucherID
		}

		posthogClient.Enqueue(actorID, event, props)
	}
}
