package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/api/metrics"
	"github.com/cezeus/club-api/internal/core/domain"
)

// RequireCapability gates a route on the caller's resolved capability set.
// Unknown roles resolve to no capabilities at all, so they are rejected here
// before any handler runs.
func RequireCapability(check func(domain.CapabilitySet) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			caps, err := domain.PermissionsFor(domain.Role(role))
			if err != nil || !check(caps) {
				metrics.PermissionDenialsTotal.WithLabelValues(role).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
