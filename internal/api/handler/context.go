package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

// currentUser extracts the verified token payload injected by the Auth
// middleware. Its presence proves the middleware ran; a missing payload on a
// protected route means the chain is miswired, so reject with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
