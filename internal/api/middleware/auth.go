package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/core/ports"
)

// Auth verifies the identity token cookie and stores the verified user
// payload in the request context under "user". Verification happens exactly
// once per request; downstream middleware and handlers read the payload from
// the context instead of re-decoding the cookie.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(ports.TokenCookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token cookie")
			}

			user, err := codec.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
