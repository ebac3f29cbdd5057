package routes

import (
	"github.com/gin-gonic/gin"

	"sitios/internal/interfaces/http/handlers"
	"sitios/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for authenticated user routes.
type UserRouteConfig struct {
	SessionHandler    *handlers.SessionHandler
	PreferenceHandler *handlers.PreferenceHandler
	ProfileHandler    *handlers.ProfileHandler
	AuthMiddleware    *middleware.AuthMiddleware
	ActivityLogger    gin.HandlerFunc
}

// SetupUserRoutes configures session, preference and profile routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	sessions := engine.Group("/sessions", cfg.AuthMiddleware.RequireAuth(), cfg.ActivityLogger)
	{
		sessions.GET("", cfg.SessionHandler.List)
		sessions.DELETE("/others", cfg.SessionHandler.EndOthers)
		sessions.DELETE("/:id", cfg.SessionHandler.End)
	}

	preferences := engine.Group("/preferences", cfg.AuthMiddleware.RequireAuth(), cfg.ActivityLogger)
	{
		preferences.GET("", cfg.PreferenceHandler.Get)
		preferences.GET("/:key", cfg.PreferenceHandler.GetOne)
		preferences.PUT("", cfg.PreferenceHandler.Set)
		preferences.DELETE("/:key", cfg.PreferenceHandler.Delete)
		preferences.DELETE("", cfg.PreferenceHandler.DeleteAll)
	}

	profile := engine.Group("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.ActivityLogger)
	{
		profile.PUT("", cfg.ProfileHandler.Update)
		profile.PUT("/password", cfg.ProfileHandler.ChangePassword)
	}
}
