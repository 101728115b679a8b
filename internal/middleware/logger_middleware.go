package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"timers/internal/logging"
)

// RequestLogger writes one log line per request. The query string is left
// out because it carries the session token.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(started),
		}
		if user := CurrentUser(c); user != nil {
			args = append(args, "user_id", user.ID)
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error(c.Request.Context(), "request", args...)
		case c.Writer.Status() >= 400:
			logger.Warn(c.Request.Context(), "request", args...)
		default:
			logger.Info(c.Request.Context(), "request", args...)
		}
	}
}
