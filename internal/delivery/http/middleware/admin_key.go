package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"go-demandflo-backend/pkg/apperror"
)

// AdminAPIKey gates the admin route group behind a static key supplied in
// the X-API-Key header. An empty configured key disables admin access
// entirely; it never means open access.
func AdminAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			_ = c.Error(apperror.Unauthorized("Admin access is not configured"))
			c.Abort()
			return
		}

		provided := c.Request.Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			_ = c.Error(apperror.Unauthorized("Invalid or missing API key"))
			c.Abort()
			return
		}

		c.Next()
	}
}
