package routes

import (
	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
)

// TransferRouteConfig holds dependencies for transfer routes.
type TransferRouteConfig struct {
	TransferHandler *handlers.TransferHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupTransferRoutes configures transfer routes.
func SetupTransferRoutes(api *gin.RouterGroup, cfg *TransferRouteConfig) {
	transfers := api.Group("/transfers")
	transfers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		transfers.POST("", cfg.TransferHandler.Create)
		transfers.GET("", cfg.TransferHandler.List)

		transfers.GET("/asset/:asset_id/history", cfg.TransferHandler.AssetHistory)

		transfers.GET("/:id", cfg.TransferHandler.Get)
		transfers.PUT("/:id", cfg.TransferHandler.Update)
		transfers.DELETE("/:id", cfg.TransferHandler.Delete)
	}
}
