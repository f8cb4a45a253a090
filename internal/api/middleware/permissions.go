package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/ports"
)

// RequirePermissions short-circuits with 403 unless the authenticated user
// holds at least one of the given permissions. Must run after Auth.
func RequirePermissions(resolver ports.PermissionService, permissions ...domain.PermissionId) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			allowed, err := resolver.HasPermissions(c.Request().Context(), user.ID, permissions...)
			if err != nil {
				return err
			}
			if !allowed {
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}
