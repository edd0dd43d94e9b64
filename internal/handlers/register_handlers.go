package handlers

import (
	"github.com/SscSPs/ledger_posting_app/cmd/docs"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
	"github.com/SscSPs/ledger_posting_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes. writeGuards run ahead of every
// route that writes (posting, workflow transitions, audit appends).
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeGuards ...gin.HandlerFunc,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, writeGuards)

	// Swagger routes (only outside production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
	writeGuards []gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")
	tenant := v1.Group("/tenants/:tenant_id", middleware.TenantGuard())

	registerVoucherRoutes(v1, tenant, service.Journal, writeGuards)
	registerAuditRoutes(tenant, service.AuditTrail, writeGuards)
	registerAccountRoutes(tenant, service.ChartOfAccounts)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg == nil || cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// guarded returns a fresh chain of the write guards followed by h.
func guarded(writeGuards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(writeGuards)+1)
	chain = append(chain, writeGuards...)
	return append(chain, h)
}
