package routes

import (
	"github.com/gin-gonic/gin"

	"sitios/internal/interfaces/http/handlers"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin", cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.DELETE("/users/:id", cfg.AdminHandler.DeleteUser)
	}
}
