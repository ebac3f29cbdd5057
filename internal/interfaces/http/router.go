package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sitios/internal/application/user/services"
	"sitios/internal/application/user/usecases"
	vo "sitios/internal/domain/user/valueobjects"
	"sitios/internal/infrastructure/auth"
	"sitios/internal/infrastructure/config"
	"sitios/internal/infrastructure/geoip"
	"sitios/internal/infrastructure/ratelimit"
	"sitios/internal/infrastructure/repository"
	"sitios/internal/interfaces/http/handlers"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/interfaces/http/routes"
	"sitios/internal/shared/db"
	"sitios/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// totpAdapter bridges the TOTP infrastructure service to the usecase port.
type totpAdapter struct {
	*auth.TOTPService
}

func (a *totpAdapter) GenerateKey(accountName string) (*usecases.TwoFactorProvisioning, error) {
	key, err := a.TOTPService.GenerateKey(accountName)
	if err != nil {
		return nil, err
	}
	return &usecases.TwoFactorProvisioning{
		Secret:       key.Secret,
		OtpauthURL:   key.OtpauthURL,
		QRCodeBase64: key.QRCodeBase64,
	}, nil
}

// NewRouter creates a new HTTP router with all dependencies wired.
// redisClient may be nil; auth rate limiting is skipped without it.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	registerBindingRules()

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CustomLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.ErrorHandler())

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	backupCodeRepo := repository.NewBackupCodeRepository(gormDB)
	preferenceRepo := repository.NewPreferenceRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	// Infrastructure services
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpMinutes)
	twoFactor := &totpAdapter{auth.NewTOTPService(cfg.Auth.TwoFactor.Issuer)}

	var geoResolver services.GeoResolver
	if cfg.GeoIP.Enabled {
		geoResolver = geoip.NewIPAPIResolver(cfg.GeoIP.BaseURL, time.Duration(cfg.GeoIP.Timeout)*time.Second, log)
	}

	// Application services
	sessionTracker := services.NewSessionTracker(sessionRepo, geoResolver, log)
	activityRecorder := services.NewActivityRecorder(activityRepo, log)

	// Use cases
	registerUC := usecases.NewRegisterWithPasswordUseCase(userRepo, preferenceRepo, hasher, jwtService, sessionTracker, txManager, log)
	loginUC := usecases.NewLoginWithPasswordUseCase(userRepo, backupCodeRepo, hasher, jwtService, twoFactor, sessionTracker, txManager, log)
	logoutUC := usecases.NewLogoutUseCase(sessionRepo, log)
	getCurrentUserUC := usecases.NewGetCurrentUserUseCase(userRepo)
	beginSetupUC := usecases.NewBeginTwoFactorSetupUseCase(userRepo, twoFactor, log)
	confirmSetupUC := usecases.NewConfirmTwoFactorSetupUseCase(userRepo, backupCodeRepo, twoFactor, txManager, log)
	disableUC := usecases.NewDisableTwoFactorUseCase(userRepo, backupCodeRepo, hasher, txManager, log)
	listSessionsUC := usecases.NewListSessionsUseCase(sessionRepo)
	endSessionUC := usecases.NewEndSessionUseCase(sessionRepo, log)
	endOtherSessionsUC := usecases.NewEndOtherSessionsUseCase(sessionRepo, log)
	getPreferencesUC := usecases.NewGetPreferencesUseCase(preferenceRepo)
	getPreferenceUC := usecases.NewGetPreferenceUseCase(preferenceRepo)
	setPreferenceUC := usecases.NewSetPreferenceUseCase(preferenceRepo)
	deletePreferenceUC := usecases.NewDeletePreferenceUseCase(preferenceRepo)
	deleteAllPreferencesUC := usecases.NewDeleteAllPreferencesUseCase(preferenceRepo)
	updateProfileUC := usecases.NewUpdateProfileUseCase(userRepo, log)
	changePasswordUC := usecases.NewChangePasswordUseCase(userRepo, sessionRepo, hasher, log)
	listUsersUC := usecases.NewListUsersUseCase(userRepo)
	deleteUserUC := usecases.NewDeleteUserUseCase(userRepo, sessionRepo, backupCodeRepo, preferenceRepo, activityRepo, txManager, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, getCurrentUserUC, cfg.Auth.Cookie, log)
	twoFactorHandler := handlers.NewTwoFactorHandler(beginSetupUC, confirmSetupUC, disableUC, log)
	sessionHandler := handlers.NewSessionHandler(listSessionsUC, endSessionUC, endOtherSessionsUC, log)
	preferenceHandler := handlers.NewPreferenceHandler(getPreferencesUC, getPreferenceUC, setPreferenceUC, deletePreferenceUC, deleteAllPreferencesUC, log)
	profileHandler := handlers.NewProfileHandler(updateProfileUC, changePasswordUC, log)
	adminHandler := handlers.NewAdminHandler(listUsersUC, deleteUserUC, log)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, sessionRepo, cfg.Auth.Cookie, log)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}
	authRateLimit := middleware.AuthRateLimit(limiter, cfg.RateLimit.AuthLimit, cfg.RateLimit.AuthWindowSeconds, log)
	activityLogger := middleware.ActivityLogger(activityRecorder)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:      authHandler,
		TwoFactorHandler: twoFactorHandler,
		AuthMiddleware:   authMiddleware,
		RateLimit:        authRateLimit,
		ActivityLogger:   activityLogger,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		SessionHandler:    sessionHandler,
		PreferenceHandler: preferenceHandler,
		ProfileHandler:    profileHandler,
		AuthMiddleware:    authMiddleware,
		ActivityLogger:    activityLogger,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AdminHandler:   adminHandler,
		AuthMiddleware: authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// registerBindingRules installs custom validator tags used in request structs.
func registerBindingRules() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("strongpw", func(fl validator.FieldLevel) bool {
			return vo.ValidatePassword(fl.Field().String()) == nil
		})
	}
}
