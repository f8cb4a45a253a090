package middleware

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/core/domain"
)

const (
	countMin      = 1
	countMax      = 100
	pageNumberMin = 1
)

// ValidatePagination checks the "count" and "pageNumber" query parameters.
// All violations are collected, one error per parameter, in the order count
// then pageNumber. An empty result means the parameters are valid.
func ValidatePagination(query url.Values) []domain.ValidationError {
	var errs []domain.ValidationError

	if !query.Has("count") {
		errs = append(errs, domain.ValidationError{
			Message: `"count" query parameter is required, but was not provided.`,
			Path:    "count",
		})
	} else {
		count := query.Get("count")
		// strconv.Atoi rejects fractional values like "1.5" instead of
		// rounding them.
		parsed, err := strconv.Atoi(count)
		switch {
		case err != nil:
			errs = append(errs, domain.ValidationError{
				Message: fmt.Sprintf(`Incorrect "count" query parameter value: %q.`, count),
				Path:    "count",
			})
		case parsed < countMin:
			errs = append(errs, domain.ValidationError{
				Message: fmt.Sprintf(`"count" query parameter value can't be less than %d.`, countMin),
				Path:    "count",
			})
		case parsed > countMax:
			errs = append(errs, domain.ValidationError{
				Message: fmt.Sprintf(`"count" query parameter value can't be more than %d.`, countMax),
				Path:    "count",
			})
		}
	}

	if !query.Has("pageNumber") {
		errs = append(errs, domain.ValidationError{
			Message: `"pageNumber" query parameter is required, but was not provided.`,
			Path:    "pageNumber",
		})
	} else {
		pageNumber := query.Get("pageNumber")
		parsed, err := strconv.Atoi(pageNumber)
		switch {
		case err != nil:
			errs = append(errs, domain.ValidationError{
				Message: fmt.Sprintf(`Incorrect "pageNumber" query parameter value: %q.`, pageNumber),
				Path:    "pageNumber",
			})
		case parsed < pageNumberMin:
			errs = append(errs, domain.ValidationError{
				Message: fmt.Sprintf(`"pageNumber" query parameter value can't be less than %d.`, pageNumberMin),
				Path:    "pageNumber",
			})
		}
	}

	return errs
}

// Pagination validates the pagination query parameters and, on success,
// stores the parsed integers in the context under "count" and "pageNumber".
func Pagination() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			query := c.QueryParams()

			if errs := ValidatePagination(query); len(errs) > 0 {
				return domain.NewRequestValidationError("Invalid pagination query parameters.", errs...)
			}

			count, _ := strconv.Atoi(query.Get("count"))
			pageNumber, _ := strconv.Atoi(query.Get("pageNumber"))
			c.Set("count", count)
			c.Set("pageNumber", pageNumber)

			return next(c)
		}
	}
}
