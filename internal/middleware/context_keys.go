package middleware

import "github.com/gin-gonic/gin"

// Attribution set by handlers once the body is bound. There is no authentication,
// so these only label analytics and logs.
const (
	actorIDKey  = contextKey("actorID")
	tenantIDKey = contextKey("tenantID")
)

// SetActorID records the acting user for downstream middleware.
func SetActorID(c *gin.Context, actorID string) {
	c.Set(string(actorIDKey), actorID)
}

// GetActorIDFromContext retrieves the actor recorded by SetActorID.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, actorIDKey)
}

// SetTenantID records the tenant a body-scoped request acts for.
func SetTenantID(c *gin.Context, tenantID string) {
	c.Set(string(tenantIDKey), tenantID)
}

// GetTenantIDFromContext returns the tenant from SetTenantID, falling back to the :tenant_id path parameter.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	if tenantID, ok := stringFromContext(c, tenantIDKey); ok {
		return tenantID, true
	}
	if p := c.Param("tenant_id"); p != "" {
		return p, true
	}
	return "", false
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	val, exists := c.Get(string(key))
	if !exists {
		return "", false
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
