package auth

import (
	"context"
	"log/slog"
	"time"

	"volta-cms/internal/config"
	"volta-cms/internal/services/users"
)

// UserStore is the slice of the users service the authentication gate needs.
type UserStore interface {
	ValidateCredentials(ctx context.Context, email, password string) (*users.User, error)
	Create(ctx context.Context, req users.CreateUserRequest) (*users.User, error)
}

// Service handles authentication business logic
type Service struct {
	users  UserStore
	config config.Config
	log    *slog.Logger
}

// NewService creates a new auth service
func NewService(store UserStore, cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		users:  store,
		config: cfg,
		log:    log,
	}
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@test.com"`
	Password string `json:"password" validate:"required" example:"Password123"`
}

// RegisterRequest represents a self-service registration request.
// Registration never accepts a role; new accounts always start as "user".
type RegisterRequest struct {
	Email       string     `json:"email" validate:"required,email" example:"john@example.com"`
	Password    string     `json:"password" validate:"required,password" example:"Password123"`
	FullName    string     `json:"full_name,omitempty" validate:"omitempty,min=2" example:"John Doe"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" example:"2000-01-01T00:00:00Z"`
}

// LoginResponse carries the authenticated user and the bearer token that
// was also written into the session cookie.
type LoginResponse struct {
	User        *users.User `json:"user"`
	AccessToken string      `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Login validates the credentials and issues a session token.
// The returned expiry drives the cookie lifetime set by the handler.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, time.Time, error) {
	user, err := s.users.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, time.Time{}, err
	}

	token, expiresAt, err := s.IssueToken(user.ID.Hex())
	if err != nil {
		s.log.Error("failed to issue session token", "error", err)
		return nil, time.Time{}, ErrTokenGeneration
	}

	return &LoginResponse{User: user, AccessToken: token}, expiresAt, nil
}

// Register creates a new user account. No token is issued; the caller is
// expected to log in afterwards.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*users.User, error) {
	return s.users.Create(ctx, users.CreateUserRequest{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Role:        users.RoleUser,
	})
}
