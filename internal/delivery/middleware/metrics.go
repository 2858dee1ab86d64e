package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPMetrics records one observation per served request.
type HTTPMetrics interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// MetricsMiddleware feeds request counts and latencies to HTTPMetrics.
type MetricsMiddleware struct {
	metrics HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(metrics HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle labels requests by route template, not raw path, to bound cardinality.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not written yet.
			status = statusOf(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		m.metrics.RecordHTTPRequest(c.Request().Method, path, status, time.Since(start))

		return err
	}
}
