package middleware

import (
	"strconv"
	"time"

	"gymplus/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records per-request Prometheus counters and latency histograms.
// The route template (not the raw URL) is used as the path label to keep
// cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
