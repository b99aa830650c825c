package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

// callerFromContext extracts the auth claims injected by the Auth middleware
// and performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - user_id and email must be present; without them the JWT is structurally
//     valid but operationally unusable — reject with 401.
func callerFromContext(c echo.Context) (ports.Caller, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	if userID == "" || email == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing caller identity")
	}

	return ports.Caller{ID: userID, Email: email, Role: domain.Role(role)}, nil
}
