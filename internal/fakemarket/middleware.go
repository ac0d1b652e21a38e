package fakemarket

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing and the
// client's correlation id.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetHeader("X-Request-ID"),
	})
}
