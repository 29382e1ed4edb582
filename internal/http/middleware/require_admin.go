package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates the triage and analytics surface: 401 for anonymous
// callers, 403 for authenticated non-admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		if u.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "forbidden",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Next()
	}
}
