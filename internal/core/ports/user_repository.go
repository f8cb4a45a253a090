package ports

import (
	"context"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

// UserUpdate carries a partial update. Nil pointer fields and a nil Roles
// slice are left untouched by the repository.
type UserUpdate struct {
	DisplayedName *string
	Email         *string
	PasswordHash  *string
	Roles         []domain.RoleId
}

// UserRepository defines persistence operations for users. The backing store
// enforces a unique constraint on email; writes that violate it fail with
// domain.ErrEmailTaken.
type UserRepository interface {
	// List returns a page of users sorted by displayedName ascending, plus
	// the total number of users.
	List(ctx context.Context, limit, offset int) ([]*domain.User, int64, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update atomically applies upd and returns the updated document.
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	// Delete atomically removes the user and returns the deleted document.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
