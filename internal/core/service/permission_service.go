package service

import (
	"context"
	"errors"

	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/ports"
)

// PermissionService resolves role-based permissions for users.
type PermissionService struct {
	repo ports.UserRepository
}

func NewPermissionService(repo ports.UserRepository) *PermissionService {
	return &PermissionService{repo: repo}
}

// HasPermissions loads the user by id and reports whether any of the user's
// roles grants one of the required permissions. A nonexistent user has no
// permissions.
func (s *PermissionService) HasPermissions(ctx context.Context, userID string, permissions ...domain.PermissionId) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	for _, role := range user.Roles {
		for _, granted := range domain.RoleToPermissions[role] {
			for _, required := range permissions {
				if granted == required {
					return true, nil
				}
			}
		}
	}
	return false, nil
}
