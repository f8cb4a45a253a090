package handler

import (
	"errors"
	"testing"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

func TestValidator_CreateMissingFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{})

	var rve *domain.RequestValidationError
	if !errors.As(err, &rve) {
		t.Fatalf("expected RequestValidationError, got %v", err)
	}

	wantPaths := []string{"body.displayedName", "body.email", "body.password", "body.roles"}
	if len(rve.Errors) != len(wantPaths) {
		t.Fatalf("expected %d errors, got %v", len(wantPaths), rve.Errors)
	}
	for i, want := range wantPaths {
		if rve.Errors[i].Path != want {
			t.Errorf("error %d: expected path %q, got %q", i, want, rve.Errors[i].Path)
		}
	}
}

func TestValidator_UnsupportedRole(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{
		DisplayedName: "Alice",
		Email:         "alice@example.com",
		Password:      "secret",
		Roles:         []domain.RoleId{"superadmin"},
	})

	var rve *domain.RequestValidationError
	if !errors.As(err, &rve) {
		t.Fatalf("expected RequestValidationError, got %v", err)
	}
	if len(rve.Errors) != 1 {
		t.Fatalf("expected one error, got %v", rve.Errors)
	}
	if rve.Errors[0].Path != "body.roles[0]" {
		t.Fatalf("expected path body.roles[0], got %q", rve.Errors[0].Path)
	}
	if rve.Errors[0].Message != `Unsupported role: "superadmin".` {
		t.Fatalf("unexpected message: %q", rve.Errors[0].Message)
	}
}

func TestValidator_InvalidEmail(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{
		DisplayedName: "Alice",
		Email:         "not-an-email",
		Password:      "secret",
		Roles:         []domain.RoleId{domain.RoleUser},
	})

	var rve *domain.RequestValidationError
	if !errors.As(err, &rve) {
		t.Fatalf("expected RequestValidationError, got %v", err)
	}
	if len(rve.Errors) != 1 || rve.Errors[0].Path != "body.email" {
		t.Fatalf("expected one error on body.email, got %v", rve.Errors)
	}
}

func TestValidator_UpdateAllFieldsOptional(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&updateUserRequest{}); err != nil {
		t.Fatalf("empty partial update should validate, got %v", err)
	}
}

func TestValidator_UpdateEmptyRolesRejected(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&updateUserRequest{Roles: []domain.RoleId{}})

	var rve *domain.RequestValidationError
	if !errors.As(err, &rve) {
		t.Fatalf("expected RequestValidationError, got %v", err)
	}
	if len(rve.Errors) != 1 || rve.Errors[0].Path != "body.roles" {
		t.Fatalf("expected one error on body.roles, got %v", rve.Errors)
	}
}

func TestValidator_ValidCreatePasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{
		DisplayedName: "Bob",
		Email:         "bob@example.com",
		Password:      "pwd",
		Roles:         []domain.RoleId{domain.RoleAdmin, domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("valid request should pass, got %v", err)
	}
}
