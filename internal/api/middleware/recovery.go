package middleware

import (
	"net/http"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery returns a middleware that converts panics into 500 responses and
// logs them instead of letting the process die.
func Recovery() gin.HandlerFunc {
	log := logger.New()

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				entry := log.WithFields(map[string]interface{}{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				})
				if requestID := c.GetString(RequestIDKey); requestID != "" {
					entry = entry.WithField("request_id", requestID)
				}
				entry.Errorf("panic recovered: %v", r)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
