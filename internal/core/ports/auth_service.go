package ports

import (
	"context"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and returns the matching user.
	// Fails with domain.ErrUserNotFound for an unknown email and
	// domain.ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// PermissionService answers whether a user holds any of a set of permissions.
type PermissionService interface {
	// HasPermissions loads the user by id and reports whether the union of
	// permissions granted by the user's roles intersects permissions.
	// A nonexistent user yields (false, nil).
	HasPermissions(ctx context.Context, userID string, permissions ...domain.PermissionId) (bool, error)
}
