package auth

import (
	"context"
	"errors"
	"time"

	"volta-cms/cmd/server/handlers/handlerutil"
	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/cmd/server/middlewares"
	"volta-cms/internal/config"
	"volta-cms/internal/logger"
	"volta-cms/internal/services/auth"
	"volta-cms/internal/services/users"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CookiePath scopes the session cookie to the API surface only.
const CookiePath = "/api"

// AuthService defines the interface for the auth service
type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, time.Time, error)
	Register(ctx context.Context, req auth.RegisterRequest) (*users.User, error)
}

// Handlers contains the auth HTTP handlers
type Handlers struct {
	authService AuthService
	config      config.Config
	validator   *validator.Validate
}

// NewHandlers creates new auth handlers
func NewHandlers(authService AuthService, cfg config.Config, validator *validator.Validate) *Handlers {
	return &Handlers{
		authService: authService,
		config:      cfg,
		validator:   validator,
	}
}

func (h *Handlers) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     middlewares.CookieName,
		Value:    value,
		Path:     CookiePath,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

// Register handles self-service account creation
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "Registration request"
// @Success 201 {object} httperr.Response{data=users.User}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Register"); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return handlerutil.ConflictError(users.ErrEmailTaken)
		}
		logger.L().Error("registration failed", "handler", "Register", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return httperr.Created(c, "Account created", user)
}

// Login authenticates a user and starts a cookie session
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Login request"
// @Success 200 {object} httperr.Response{data=auth.LoginResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Login"); err != nil {
		return err
	}

	resp, expiresAt, err := h.authService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return httperr.Fail(httperr.E{
				Status:  fiber.StatusUnauthorized,
				Message: users.ErrInvalidCredentials.Error(),
			})
		}
		logger.L().Error("login failed", "handler", "Login", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	c.Cookie(h.sessionCookie(resp.AccessToken, expiresAt))

	return httperr.OK(c, "Logged in", resp)
}

// Logout clears the session cookie. The route sits behind the auth guard,
// so the caller must present a valid token. Idempotent for an authenticated
// caller: repeating the call is still a success. Bearer tokens already
// handed out stay valid until they expire on their own.
// @Summary End the cookie session
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *Handlers) Logout(c *fiber.Ctx) error {
	// Same flags as the login cookie so browsers actually drop it.
	cookie := h.sessionCookie("", time.Unix(0, 0))
	c.Cookie(cookie)

	return httperr.OK(c, "Logged out", nil)
}
