package middleware

import (
	"time"

	"github.com/deppfellow/exercise-tracker/internal/observability"
	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// HTTPMetrics records Prometheus request metrics keyed by route template.
func HTTPMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			done := observability.HTTPRequestStarted()
			defer done()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status, _ = resolveError(err).Normalize()
			}

			route := c.Path()
			if route == "" || route == "/*" {
				route = unmatchedRoute
			}

			observability.ObserveHTTPRequest(c.Request().Method, route, status, time.Since(start))

			return err
		}
	}
}
