package middleware

import (
	"time"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger returns a middleware that logs each request with method, path,
// status, latency and the request id assigned by RequestID.
func Logger() gin.HandlerFunc {
	log := logger.New()

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		entry := log.WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if requestID := c.GetString(RequestIDKey); requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request completed")
		case c.Writer.Status() >= 400:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}
