package routes

import (
	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
)

// AssetRouteConfig holds dependencies for asset routes.
type AssetRouteConfig struct {
	AssetHandler   *handlers.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAssetRoutes configures asset routes.
func SetupAssetRoutes(api *gin.RouterGroup, cfg *AssetRouteConfig) {
	assets := api.Group("/assets")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.POST("", cfg.AssetHandler.Create)
		assets.GET("", cfg.AssetHandler.List)

		assets.GET("/:id", cfg.AssetHandler.Get)
		assets.PUT("/:id", cfg.AssetHandler.Update)
		assets.DELETE("/:id", cfg.AssetHandler.Delete)
	}
}
