package middleware

import (
	"time"

	"eslap-workspace/services"

	"github.com/gin-gonic/gin"
)

/**
 * HTTP request statistics middleware
 * @description
 * - Counts requests per route and records their duration
 * - Requests answered with a status >= 400 are also counted as errors
 * - Feeds the request statistics of the health probe
 */
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		services.IncrementRequestCount(path)
		services.RecordRequestDuration(path, duration)
		if c.Writer.Status() >= 400 {
			services.IncrementErrorCount(path)
		}
	}
}

func GetTotalRequests() int64 {
	return services.GetTotalRequestCount()
}

func GetErrorRequests() int64 {
	return services.GetTotalErrorCount()
}
