package routes

import (
	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication and user roster routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)

		auth.GET("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetProfile)
		auth.PUT("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.UpdateProfile)
		auth.GET("/users", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ListUsers)
	}
}
