package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/ports"
)

type stubCodec struct {
	verifyFn func(raw string) (*domain.User, error)
}

func (s *stubCodec) Issue(user *domain.User) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubCodec) Verify(raw string) (*domain.User, error) {
	return s.verifyFn(raw)
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ports.TokenCookieName, Value: "signed-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	codec := &stubCodec{
		verifyFn: func(raw string) (*domain.User, error) {
			if raw != "signed-token" {
				t.Fatalf("unexpected raw token: %s", raw)
			}
			return &domain.User{ID: "u1", Roles: []domain.RoleId{domain.RoleAdmin}}, nil
		},
	}

	called := false
	mw := Auth(codec)
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get("user").(*domain.User)
		if !ok || user.ID != "u1" {
			t.Fatalf("user payload not set in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	codec := &stubCodec{
		verifyFn: func(raw string) (*domain.User, error) {
			t.Fatalf("should not verify without a cookie")
			return nil, nil
		},
	}

	mw := Auth(codec)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ports.TokenCookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	codec := &stubCodec{
		verifyFn: func(raw string) (*domain.User, error) {
			return nil, errors.New("token signature is invalid")
		},
	}

	mw := Auth(codec)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != "token signature is invalid" {
		t.Fatalf("expected codec error message, got %v", he.Message)
	}
}
