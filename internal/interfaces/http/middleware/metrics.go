package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/infrastructure/metrics"
)

// Metrics records request counts, latencies and in-flight gauge per route
// template, so /api/assets/:id stays one series regardless of id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted()
		start := time.Now()

		c.Next()

		done()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
