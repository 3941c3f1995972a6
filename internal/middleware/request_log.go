package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hlifeacademy/dna-backend/internal/logger"
)

// RequestLog emits one structured line per request.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.With("Middleware", "RequestLog")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		reqLog.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
