package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/infrastructure/config"
	"garrison/internal/infrastructure/metrics"
	"garrison/internal/interfaces/http/middleware"
	"garrison/internal/interfaces/http/routes"
	"garrison/internal/shared/logger"
)

// NewRouter assembles the gin engine: global middleware, the health and
// metrics endpoints, and every /api route group.
func NewRouter(cfg *config.Config, c *Container, log logger.Interface) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middlewareChain(cfg, log)...)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	api := engine.Group("/api")
	// Record runs after the handler chain, so it sees the identity that
	// RequireAuth placed on the context.
	api.Use(c.AuditMiddleware.Record())

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Military Asset Management API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.AuthHandler,
		AuthMiddleware: c.AuthMiddleware,
	})
	routes.SetupAssetRoutes(api, &routes.AssetRouteConfig{
		AssetHandler:   c.AssetHandler,
		AuthMiddleware: c.AuthMiddleware,
	})
	routes.SetupPurchaseRoutes(api, &routes.PurchaseRouteConfig{
		PurchaseHandler: c.PurchaseHandler,
		AuthMiddleware:  c.AuthMiddleware,
	})
	routes.SetupTransferRoutes(api, &routes.TransferRouteConfig{
		TransferHandler: c.TransferHandler,
		AuthMiddleware:  c.AuthMiddleware,
	})
	routes.SetupAssignmentRoutes(api, &routes.AssignmentRouteConfig{
		AssignmentHandler: c.AssignmentHandler,
		AuthMiddleware:    c.AuthMiddleware,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: c.DashboardHandler,
		AuthMiddleware:   c.AuthMiddleware,
	})
	routes.SetupAuditRoutes(api, &routes.AuditRouteConfig{
		AuditHandler:   c.AuditHandler,
		AuthMiddleware: c.AuthMiddleware,
	})
	routes.SetupBaseRoutes(api, &routes.BaseRouteConfig{
		BaseHandler:    c.BaseHandler,
		AuthMiddleware: c.AuthMiddleware,
	})

	return engine
}

func middlewareChain(cfg *config.Config, log logger.Interface) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.RequestLogger(log),
	}
	if cfg.Metrics.Enabled {
		chain = append(chain, middleware.Metrics())
	}
	return chain
}
