package middleware

import (
	"time"

	"github.com/The-Batman-Code/laundry-service/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics observes per-route request latency.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			metrics.RequestDuration.
				WithLabelValues(c.Path(), c.Request().Method).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}
