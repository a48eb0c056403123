// Package api provides the HTTP surface the dashboard talks to
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/amourdesk/amourdesk-go/internal/observability/logging"
)

// RequestID tags every inbound request with a ULID and echoes it back, so a
// dashboard request can be correlated with the upstream calls it triggers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = ulid.Make().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs each request on the http channel with method, path,
// status and duration.
func RequestLogger(logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		logger.HTTP().Info("Request handled",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"requestId", c.GetString("requestID"),
			"clientIp", c.ClientIP(),
			"duration", time.Since(start))
	}
}
