package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TenantHeader optionally names the tenant the caller is acting for. When an
// upstream gateway sets it, a request for any other tenant is refused.
const TenantHeader = "X-Tenant-ID"

// TenantMismatch reports whether the request header names a different tenant than tenantID.
func TenantMismatch(c *gin.Context, tenantID string) bool {
	header := c.GetHeader(TenantHeader)
	return header != "" && header != tenantID
}

// TenantGuard rejects tenant-scoped routes whose :tenant_id differs from TenantHeader.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if TenantMismatch(c, c.Param("tenant_id")) {
			GetLoggerFromContext(c).Warn("Tenant mismatch between header and path")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Forbidden"})
			return
		}
		c.Next()
	}
}
