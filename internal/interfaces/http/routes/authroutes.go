package routes

import (
	"github.com/gin-gonic/gin"

	"sitios/internal/interfaces/http/handlers"
	"sitios/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler      *handlers.AuthHandler
	TwoFactorHandler *handlers.TwoFactorHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimit        gin.HandlerFunc
	ActivityLogger   gin.HandlerFunc
}

// SetupAuthRoutes configures authentication and two-factor routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimit, cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimit, cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.ActivityLogger, cfg.AuthHandler.Me)

		twoFactor := auth.Group("/2fa", cfg.AuthMiddleware.RequireAuth())
		{
			twoFactor.POST("/setup", cfg.TwoFactorHandler.BeginSetup)
			twoFactor.POST("/verify", cfg.TwoFactorHandler.ConfirmSetup)
			twoFactor.POST("/disable", cfg.TwoFactorHandler.Disable)
		}
	}
}
