package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

// ValidateUserID rejects requests whose ":id" path parameter is not a valid
// store object id (24-character hex string) before any lookup happens.
func ValidateUserID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Param("id")

			if _, err := primitive.ObjectIDFromHex(id); err != nil {
				message := fmt.Sprintf(`Incorrect "id" path parameter value: %q.`, id)
				return domain.NewRequestValidationError(message, domain.ValidationError{
					Message: message,
					Path:    "id",
				})
			}

			return next(c)
		}
	}
}
