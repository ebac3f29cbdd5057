package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sitios/internal/application/user/services"
)

// ActivityLogger records what authenticated users look at, after the response
// is written. GET requests outside /api/ count as page views; GET /api/search
// records the query. Recording never affects the response.
func ActivityLogger(recorder *services.ActivityRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" || c.Writer.Status() >= 400 {
			return
		}
		userID, ok := CurrentUserID(c)
		if !ok {
			return
		}

		path := c.Request.URL.Path
		switch {
		case strings.HasPrefix(path, "/api/search"):
			if query := c.Query("q"); query != "" {
				recorder.RecordSearch(c.Request.Context(), userID, query)
			}
		case !strings.HasPrefix(path, "/api/"):
			recorder.RecordPageView(c.Request.Context(), userID, path)
		}
	}
}
