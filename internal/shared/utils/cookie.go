package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitios/internal/shared/config"
)

// SetAuthCookie sets the bearer token as an HttpOnly cookie. The cookie is
// the sole credential carrier; there is no refresh token.
func SetAuthCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		cookieConfig.Name,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearAuthCookie removes the token cookie. Attributes must match the ones
// used when setting it or browsers will keep the stale cookie around.
func ClearAuthCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		cookieConfig.Name,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetTokenFromCookie retrieves the bearer token from the named cookie.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err == nil && token != "" {
		return token
	}
	return ""
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
