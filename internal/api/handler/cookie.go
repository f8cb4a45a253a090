package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/core/ports"
)

// setTokenCookie attaches the signed identity token to the response.
// Integrity is delegated to the token signature itself.
func setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     ports.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// clearTokenCookie instructs the client to drop the identity token.
func clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     ports.TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
