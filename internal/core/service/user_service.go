package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/ports"
)

// UserService implements the users CRUD operations. Password hashing happens
// here, as an explicit step before persistence, never inside the repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.UserPage, error) {
	limit := input.Count
	offset := input.Count * (input.PageNumber - 1)

	users, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &ports.UserPage{
		Data:            users,
		ItemsCount:      len(users),
		PagesTotalCount: int(math.Ceil(float64(total) / float64(input.Count))),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &domain.User{
		DisplayedName: input.DisplayedName,
		Email:         domain.NormalizeEmail(input.Email),
		PasswordHash:  string(hash),
		Roles:         input.Roles,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	upd := ports.UserUpdate{
		DisplayedName: input.DisplayedName,
		Roles:         input.Roles,
	}

	if input.Email != nil {
		normalized := domain.NormalizeEmail(*input.Email)
		upd.Email = &normalized
	}

	// Re-hash only when the password field is present in the update.
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user deleted")
	return user, nil
}
