package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issue-tracker/users-api/internal/api/metrics"
	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the users resource.
type UserHandler struct {
	service     ports.UserService
	permissions ports.PermissionService
	codec       ports.TokenCodec
}

func NewUserHandler(service ports.UserService, permissions ports.PermissionService, codec ports.TokenCodec) *UserHandler {
	return &UserHandler{service: service, permissions: permissions, codec: codec}
}

// List handles GET /api/users?count&pageNumber.
//
// @Summary      List users, paginated
// @Tags         users
// @Produce      json
// @Param        count       query     int  true  "Page size, 1..100"
// @Param        pageNumber  query     int  true  "1-based page number"
// @Success      200  {object}  ports.UserPage
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	// Set by the Pagination middleware after validation.
	count, _ := c.Get("count").(int)
	pageNumber, _ := c.Get("pageNumber").(int)

	page, err := h.service.List(c.Request().Context(), ports.ListUsersInput{
		Count:      count,
		PageNumber: pageNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id := c.Param("id")

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageOnly(userNotFoundMessage(id)))
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users/create. Requires the manage-users
// permission, enforced by middleware.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      201  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		DisplayedName: req.DisplayedName,
		Email:         req.Email,
		Password:      req.Password,
		Roles:         req.Roles,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, emailTakenResponse(req.Email))
		}
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Update handles PATCH /api/users/update/:id. Users may update their own
// record; updating anyone else requires the manage-users permission. The
// ownership check runs before the body is validated so a forbidden request
// leaks nothing about payload validity.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users/update/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")

	requester, err := currentUser(c)
	if err != nil {
		return err
	}

	if requester.ID != id {
		allowed, err := h.permissions.HasPermissions(c.Request().Context(), requester.ID, domain.PermissionManageUsers)
		if err != nil {
			return err
		}
		if !allowed {
			return domain.ErrForbidden
		}
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		DisplayedName: req.DisplayedName,
		Email:         req.Email,
		Password:      req.Password,
		Roles:         req.Roles,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageOnly(userNotFoundMessage(id)))
		}
		if errors.Is(err, domain.ErrEmailTaken) && req.Email != nil {
			return c.JSON(http.StatusBadRequest, emailTakenResponse(*req.Email))
		}
		return err
	}

	// A self-update changes the requester's own claims, so the identity
	// cookie is re-issued with the fresh payload.
	if requester.ID == id {
		token, err := h.codec.Issue(user)
		if err != nil {
			return err
		}
		setTokenCookie(c, token)
	}

	metrics.UsersUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/delete/:id. Requires the manage-users
// permission even for self-deletion; deleting oneself also clears the
// identity cookie.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	requester, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageOnly(userNotFoundMessage(id)))
		}
		return err
	}

	if requester.ID == id {
		clearTokenCookie(c)
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, user)
}

func userNotFoundMessage(id string) string {
	return fmt.Sprintf("User with id %q doesn't exist.", id)
}

// emailTakenResponse translates a duplicate-key write failure into the
// field-scoped uniqueness validation error.
func emailTakenResponse(email string) errorResponse {
	message := fmt.Sprintf("User with email %q already exists.", domain.NormalizeEmail(email))
	return errorResponse{
		Message: message,
		ValidationErrors: []domain.ValidationError{
			{Message: message, Path: "email"},
		},
	}
}
