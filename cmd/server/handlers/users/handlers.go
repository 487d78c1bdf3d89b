package users

import (
	"context"

	"volta-cms/cmd/server/handlers/handlerutil"
	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/internal/services/users"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UsersService defines the interface for the users service
type UsersService interface {
	Create(ctx context.Context, req users.CreateUserRequest) (*users.User, error)
	List(ctx context.Context) ([]*users.User, error)
	Get(ctx context.Context, id bson.ObjectID) (*users.User, error)
	Update(ctx context.Context, id bson.ObjectID, req users.UpdateUserRequest) (*users.User, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// Handlers contains the users HTTP handlers
type Handlers struct {
	service   UsersService
	validator *validator.Validate
}

// NewHandlers creates new users handlers
func NewHandlers(service UsersService, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// Create handles user creation
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body users.CreateUserRequest true "Create user request"
// @Success 201 {object} httperr.Response{data=users.User}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req users.CreateUserRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "CreateUser"); err != nil {
		return err
	}

	user, err := h.service.Create(c.Context(), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "CreateUser", nil, users.ErrEmailTaken)
	}

	return httperr.Created(c, "User created", user)
}

// List returns every user account
// @Summary List users
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} httperr.Response{data=[]users.User}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context())
	if err != nil {
		return handlerutil.HandleServiceError(err, "ListUsers", nil, nil)
	}

	return httperr.OK(c, "Users", list)
}

// Get returns a single user by id
// @Summary Get a user
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} httperr.Response{data=users.User}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "GetUser", users.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Context(), id)
	if err != nil {
		return handlerutil.HandleServiceError(err, "GetUser", users.ErrUserNotFound, nil)
	}

	return httperr.OK(c, "User", user)
}

// Update applies a partial update to a user
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param request body users.UpdateUserRequest true "Update user request"
// @Success 200 {object} httperr.Response{data=users.User}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{id} [patch]
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "UpdateUser", users.ErrUserNotFound)
	if err != nil {
		return err
	}

	var req users.UpdateUserRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "UpdateUser"); err != nil {
		return err
	}

	user, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "UpdateUser", users.ErrUserNotFound, users.ErrEmailTaken)
	}

	return httperr.OK(c, "User updated", user)
}

// Delete removes a user account
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "DeleteUser", users.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return handlerutil.HandleServiceError(err, "DeleteUser", users.ErrUserNotFound, nil)
	}

	return httperr.OK(c, "User deleted", nil)
}
