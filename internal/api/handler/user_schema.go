package handler

import "github.com/issue-tracker/users-api/internal/core/domain"

// errorResponse is the uniform failure envelope returned on all 4xx/5xx
// responses. ValidationErrors is empty (never null) for failures that are
// not field-scoped.
type errorResponse struct {
	Message          string                   `json:"message,omitempty"`
	ValidationErrors []domain.ValidationError `json:"validationErrors"`
}

func messageOnly(message string) errorResponse {
	return errorResponse{Message: message, ValidationErrors: []domain.ValidationError{}}
}

// --- Request types ---

type createUserRequest struct {
	DisplayedName string          `json:"displayedName" validate:"required"`
	Email         string          `json:"email"         validate:"required,email"`
	Password      string          `json:"password"      validate:"required"`
	Roles         []domain.RoleId `json:"roles"         validate:"required,min=1,dive,oneof=admin user"`
}

// updateUserRequest is a partial update; absent fields stay untouched.
type updateUserRequest struct {
	DisplayedName *string         `json:"displayedName" validate:"omitempty,min=1"`
	Email         *string         `json:"email"         validate:"omitempty,email"`
	Password      *string         `json:"password"      validate:"omitempty,min=1"`
	Roles         []domain.RoleId `json:"roles"         validate:"omitempty,min=1,dive,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}
