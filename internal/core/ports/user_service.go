package ports

import (
	"context"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

// ListUsersInput carries validated pagination parameters.
type ListUsersInput struct {
	Count      int
	PageNumber int
}

// UserPage is the paginated list response shape.
type UserPage struct {
	Data            []*domain.User `json:"data"`
	ItemsCount      int            `json:"itemsCount"`
	PagesTotalCount int            `json:"pagesTotalCount"`
}

type CreateUserInput struct {
	DisplayedName string
	Email         string
	Password      string
	Roles         []domain.RoleId
}

// UpdateUserInput is a partial update; nil fields are not modified.
type UpdateUserInput struct {
	DisplayedName *string
	Email         *string
	Password      *string
	Roles         []domain.RoleId
}

type UserService interface {
	List(ctx context.Context, input ListUsersInput) (*UserPage, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
