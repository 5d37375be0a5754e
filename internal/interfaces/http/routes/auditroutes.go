package routes

import (
	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
)

// AuditRouteConfig holds dependencies for audit log routes.
type AuditRouteConfig struct {
	AuditHandler   *handlers.AuditHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuditRoutes configures audit log routes. The admin check lives in the
// usecase so the denial is audit-logged like any other request.
func SetupAuditRoutes(api *gin.RouterGroup, cfg *AuditRouteConfig) {
	audit := api.Group("/audit")
	audit.Use(cfg.AuthMiddleware.RequireAuth())
	{
		audit.GET("/logs", cfg.AuditHandler.List)
	}
}
