package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitios/internal/infrastructure/ratelimit"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

// AuthRateLimit throttles credential endpoints per client IP. When the
// limiter backend is unreachable the request passes; availability wins over
// strictness here.
func AuthRateLimit(limiter ratelimit.RateLimiter, limit, windowSeconds int, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("auth:%s", c.ClientIP())
		allowed, err := limiter.Allow(c.Request.Context(), key, limit, windowSeconds)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
