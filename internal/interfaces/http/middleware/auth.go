package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitios/internal/domain/user"
	"sitios/internal/infrastructure/auth"
	"sitios/internal/shared/authorization"
	"sitios/internal/shared/config"
	apperrors "sitios/internal/shared/errors"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

// AuthMiddleware authenticates requests with the token cookie (or a Bearer
// header fallback), loads the user and checks the bound session is still
// active. Session activity is touched on every authenticated request.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	cookie      config.CookieConfig
	logger      logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	cookie config.CookieConfig,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cookie:      cookie,
		logger:      logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			if apperrors.IsSecurityEvent(err) {
				m.logger.Warnw("rejected tampered token", "client_ip", c.ClientIP())
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		currentUser, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// A valid token for a deleted account is still unauthorized; a
			// store failure is not the caller's fault and answers 500
			if apperrors.IsNotFoundError(err) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			} else {
				m.logger.Errorw("failed to load user", "user_id", claims.UserID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
			}
			c.Abort()
			return
		}

		if claims.SessionID != "" {
			session, err := m.sessionRepo.GetByID(c.Request.Context(), claims.SessionID)
			if err != nil && !apperrors.IsNotFoundError(err) {
				m.logger.Errorw("failed to load session", "session_id", claims.SessionID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
				c.Abort()
				return
			}
			if err != nil || !session.IsActive() {
				utils.ErrorResponse(c, http.StatusUnauthorized, "session has ended")
				c.Abort()
				return
			}

			if err := m.sessionRepo.UpdateActivity(c.Request.Context(), claims.SessionID); err != nil {
				m.logger.Warnw("failed to touch session", "session_id", claims.SessionID, "error", err)
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("session_id", claims.SessionID)
		c.Set("current_user", currentUser)
		c.Set(authorization.ContextKeyUserRole, currentUser.Role().String())

		c.Next()
	}
}

// OptionalAuth populates the caller identity when a valid token is present
// and lets the request through either way.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		currentUser, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("session_id", claims.SessionID)
		c.Set("current_user", currentUser)
		c.Set(authorization.ContextKeyUserRole, currentUser.Role().String())

		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	// Cookie first, Authorization header as fallback for non-browser clients
	if token := utils.GetTokenFromCookie(c, m.cookie.Name); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// CurrentUserID returns the authenticated user ID from the Gin context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CurrentSessionID returns the session bound to the request token, if any.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
