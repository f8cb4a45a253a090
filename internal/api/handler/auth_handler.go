package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/api/metrics"
	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/ports"
)

// LoginLimiter throttles repeated failed login attempts per email.
type LoginLimiter interface {
	Exceeded(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type AuthHandler struct {
	authService ports.AuthService
	codec       ports.TokenCodec
	limiter     LoginLimiter
}

func NewAuthHandler(authService ports.AuthService, codec ports.TokenCodec, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec, limiter: limiter}
}

// Login handles POST /api/auth/login. On success the identity token cookie
// is set and the body is empty.
//
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	email := domain.NormalizeEmail(req.Email)

	exceeded, err := h.limiter.Exceeded(ctx, email)
	if err != nil {
		return err
	}
	if exceeded {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return c.JSON(http.StatusTooManyRequests,
			messageOnly("Too many failed login attempts. Try again later."))
	}

	user, err := h.authService.Login(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusNotFound,
				messageOnly(fmt.Sprintf("User with email %q doesn't exist.", email)))
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			if lerr := h.limiter.RecordFailure(ctx, email); lerr != nil {
				return lerr
			}
			return c.JSON(http.StatusBadRequest, errorResponse{
				Message: "Password is incorrect.",
				ValidationErrors: []domain.ValidationError{
					{Message: "Password is incorrect.", Path: "body.password"},
				},
			})
		}
		return err
	}

	token, err := h.codec.Issue(user)
	if err != nil {
		return err
	}

	if err := h.limiter.Reset(ctx, email); err != nil {
		return err
	}

	setTokenCookie(c, token)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.NoContent(http.StatusOK)
}

// Logout handles POST /api/auth/logout by clearing the identity cookie.
//
// @Summary      Logout a user
// @Tags         auth
// @Success      200
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearTokenCookie(c)
	return c.NoContent(http.StatusOK)
}
