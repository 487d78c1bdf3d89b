package users

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"volta-cms/internal/config"
	"volta-cms/internal/utils/crypto"
	"volta-cms/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles user account business logic
type Service struct {
	repo   Repository
	config config.Config
	log    *slog.Logger
}

// NewService creates a new users service
func NewService(repo Repository, cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
		log:    log,
	}
}

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Email       string     `json:"email" validate:"required,email" example:"john@example.com"`
	Password    string     `json:"password" validate:"required,password" example:"Password123"`
	FullName    string     `json:"full_name,omitempty" validate:"omitempty,min=2" example:"John Doe"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" example:"2000-01-01T00:00:00Z"`
	Role        Role       `json:"role,omitempty" validate:"omitempty,oneof=user admin moderator staff" example:"user"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Email       *string    `json:"email,omitempty" validate:"omitempty,email" example:"john@example.com"`
	Password    *string    `json:"password,omitempty" validate:"omitempty,password" example:"Password123"`
	FullName    *string    `json:"full_name,omitempty" validate:"omitempty,min=2" example:"John Doe"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" example:"2000-01-01T00:00:00Z"`
	Role        *Role      `json:"role,omitempty" validate:"omitempty,oneof=user admin moderator staff" example:"staff"`
}

// Create registers a new user account. The submitted password is hashed
// before it ever reaches the repository.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := crypto.HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return nil, ErrCreateUser
	}

	now := time.Now()
	user := &User{
		ID:           bson.NewObjectID(),
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     sanitize.Clean(req.FullName),
		DateOfBirth:  req.DateOfBirth,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		s.log.Error(ErrCreateUser.Error(), "error", err)
		return nil, ErrCreateUser
	}

	return user, nil
}

// List returns every user account.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single user by id.
func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update to a user. A submitted password is
// re-hashed; a submitted email is normalized before the unique check.
func (s *Service) Update(ctx context.Context, id bson.ObjectID, req UpdateUserRequest) (*User, error) {
	patch := UpdateUser{
		DateOfBirth: req.DateOfBirth,
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		patch.Email = &email
	}
	if req.FullName != nil {
		cleaned := sanitize.Clean(*req.FullName)
		patch.FullName = &cleaned
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
		patch.Role = req.Role
	}
	if req.Password != nil {
		hashed, err := crypto.HashPassword(*req.Password, s.config.BcryptCost)
		if err != nil {
			s.log.Error("failed to hash password", "error", err)
			return nil, errors.New("failed to update user")
		}
		patch.PasswordHash = &hashed
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		s.log.Error("failed to update user", "error", err, "user_id", id.Hex())
		return nil, errors.New("failed to update user")
	}

	return updated, nil
}

// Delete removes a user account.
func (s *Service) Delete(ctx context.Context, id bson.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.log.Error("failed to delete user", "error", err, "user_id", id.Hex())
		return errors.New("failed to delete user")
	}
	return nil
}

// ValidateCredentials looks a user up by email and checks the submitted
// password against the stored bcrypt hash. The error never distinguishes
// an unknown email from a wrong password, and neither value is logged.
func (s *Service) ValidateCredentials(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := crypto.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
