package routes

import (
	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
)

// AssignmentRouteConfig holds dependencies for assignment routes.
type AssignmentRouteConfig struct {
	AssignmentHandler *handlers.AssignmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupAssignmentRoutes configures assignment routes.
func SetupAssignmentRoutes(api *gin.RouterGroup, cfg *AssignmentRouteConfig) {
	assignments := api.Group("/assignments")
	assignments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assignments.POST("", cfg.AssignmentHandler.Assign)
		assignments.GET("", cfg.AssignmentHandler.List)
		assignments.POST("/expend", cfg.AssignmentHandler.Expend)

		assignments.GET("/asset/:asset_id", cfg.AssignmentHandler.AssetHistory)
		assignments.GET("/personnel/:personnel_id", cfg.AssignmentHandler.PersonnelHistory)

		assignments.GET("/:id", cfg.AssignmentHandler.Get)
		assignments.PUT("/:id", cfg.AssignmentHandler.Update)
		assignments.DELETE("/:id", cfg.AssignmentHandler.Delete)
	}
}
