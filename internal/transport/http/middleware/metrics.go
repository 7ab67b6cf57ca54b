package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JeffreyEssien/cms/internal/infra/telemetry"
)

// Metrics records request counts and latencies into the telemetry provider.
// Routes are labeled by their registered pattern so raw paths do not blow up
// cardinality.
func Metrics(provider *telemetry.Provider) gin.HandlerFunc {
	if provider == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		provider.RequestCounter().WithLabelValues(method, route, status).Inc()
		provider.RequestDuration().WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
