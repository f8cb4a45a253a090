package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository shared by the service
// tests in this package.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.RoleId(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) List(_ context.Context, limit, offset int) ([]*domain.User, int64, error) {
	all := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, cloneUser(u))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].DisplayedName < all[j].DisplayedName
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *upd.Email {
				return nil, domain.ErrEmailTaken
			}
		}
		u.Email = *upd.Email
	}
	if upd.DisplayedName != nil {
		u.DisplayedName = *upd.DisplayedName
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Roles != nil {
		u.Roles = append([]domain.RoleId(nil), upd.Roles...)
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return cloneUser(u), nil
}

func seedUser(r *stubUserRepo, displayedName, email string, roles ...domain.RoleId) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("seed-password"), bcrypt.MinCost)
	u, _ := r.Create(context.Background(), &domain.User{
		DisplayedName: displayedName,
		Email:         email,
		PasswordHash:  string(hash),
		Roles:         roles,
	})
	return u
}

func TestUserService_Create_HashesAndNormalizes(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		DisplayedName: "Alice",
		Email:         "  Alice@Example.COM ",
		Password:      "s3cret",
		Roles:         []domain.RoleId{domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(repo, "Bob", "bob@example.com", domain.RoleUser)

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		DisplayedName: "Bobby",
		Email:         "bob@example.com",
		Password:      "pass",
		Roles:         []domain.RoleId{domain.RoleUser},
	})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_List_PageMath(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	for i := 0; i < 5; i++ {
		seedUser(repo, fmt.Sprintf("User %d", i), fmt.Sprintf("u%d@example.com", i), domain.RoleUser)
	}

	page, err := svc.List(context.Background(), ports.ListUsersInput{Count: 2, PageNumber: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.ItemsCount != 2 {
		t.Fatalf("expected 2 items, got %d", page.ItemsCount)
	}
	// ceil(5 / 2) = 3
	if page.PagesTotalCount != 3 {
		t.Fatalf("expected 3 pages, got %d", page.PagesTotalCount)
	}
	if page.Data[0].DisplayedName != "User 2" {
		t.Fatalf("expected offset into sorted list, got %q", page.Data[0].DisplayedName)
	}
}

func TestUserService_Update_RehashesOnlyWhenPasswordPresent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(repo, "Carol", "carol@example.com", domain.RoleUser)

	name := "Caroline"
	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{DisplayedName: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.DisplayedName != "Caroline" {
		t.Fatalf("displayedName not updated: %q", updated.DisplayedName)
	}
	stored, _ := repo.FindByID(context.Background(), seeded.ID)
	if stored.PasswordHash != seeded.PasswordHash {
		t.Fatalf("password hash changed without a password in the update")
	}

	password := "new-password"
	if _, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Password: &password}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	stored, _ = repo.FindByID(context.Background(), seeded.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")); err != nil {
		t.Fatalf("new password not hashed and stored: %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Delete(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
