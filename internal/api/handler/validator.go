package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Violations are converted into the shared {message, path} validation error
// shape with "body."-prefixed dotted paths.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	// Report fields by their json names so error paths match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	errs := make([]domain.ValidationError, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, domain.ValidationError{
			Message: fieldError(fe),
			Path:    fieldPath(fe),
		})
	}
	return domain.NewRequestValidationError("Request body validation failed.", errs...)
}

// fieldPath converts a validator namespace like "createUserRequest.roles[1]"
// into the wire path "body.roles[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return "body." + ns
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required, but was not provided.", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("%q must contain at least %s item(s).", field, fe.Param())
	case "oneof":
		if strings.HasPrefix(field, "roles") {
			return fmt.Sprintf(`Unsupported role: "%v".`, fe.Value())
		}
		return fmt.Sprintf("%q must be one of: %s.", field, fe.Param())
	default:
		return fmt.Sprintf("%q failed validation (%s).", field, fe.Tag())
	}
}
