package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserRole is the Gin context key set by the auth middleware.
const ContextKeyUserRole = "user_role"

// RequireAdmin rejects the request unless the authenticated caller has the
// ADMIN role. It must run after the authentication middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether a caller may act on a resource
// owned by resourceOwnerID. Admins may act on anything.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
