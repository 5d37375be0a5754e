package routes

import (
	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
)

// BaseRouteConfig holds dependencies for base routes.
type BaseRouteConfig struct {
	BaseHandler    *handlers.BaseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBaseRoutes configures base routes.
func SetupBaseRoutes(api *gin.RouterGroup, cfg *BaseRouteConfig) {
	bases := api.Group("/bases")
	bases.Use(cfg.AuthMiddleware.RequireAuth())
	{
		bases.GET("", cfg.BaseHandler.List)
	}
}
