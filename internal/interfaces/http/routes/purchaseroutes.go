package routes

import (
	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
)

// PurchaseRouteConfig holds dependencies for purchase routes.
type PurchaseRouteConfig struct {
	PurchaseHandler *handlers.PurchaseHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupPurchaseRoutes configures purchase routes.
func SetupPurchaseRoutes(api *gin.RouterGroup, cfg *PurchaseRouteConfig) {
	purchases := api.Group("/purchases")
	purchases.Use(cfg.AuthMiddleware.RequireAuth())
	{
		purchases.POST("", cfg.PurchaseHandler.Create)
		purchases.GET("", cfg.PurchaseHandler.List)

		purchases.GET("/:id", cfg.PurchaseHandler.Get)
		purchases.PUT("/:id", cfg.PurchaseHandler.Update)
		purchases.DELETE("/:id", cfg.PurchaseHandler.Delete)
	}
}
