package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ValidationError describes a single field-scoped failure. Path is a dotted
// field path such as "body.email", or a bare parameter name for query and
// path parameters ("count", "id").
type ValidationError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// RequestValidationError carries the ordered list of validation errors for a
// rejected request. It renders as HTTP 400 with the standard error envelope.
type RequestValidationError struct {
	Message string
	Errors  []ValidationError
}

func (e *RequestValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request validation failed"
}

// NewRequestValidationError builds a RequestValidationError from an ordered
// list of field errors.
func NewRequestValidationError(message string, errs ...ValidationError) *RequestValidationError {
	return &RequestValidationError{Message: message, Errors: errs}
}
