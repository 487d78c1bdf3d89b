package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"volta-cms/internal/config"
	"volta-cms/internal/services/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockUserStore is a mock implementation of UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ValidateCredentials(ctx context.Context, email, password string) (*users.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, req users.CreateUserRequest) (*users.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func authTestConfig() config.Config {
	return config.Config{
		JWTSecret:    "this-is-a-test-jwt-secret-key-with-32-plus-chars",
		JWTExpiresIn: "1d",
	}
}

func TestLogin(t *testing.T) {
	store := &MockUserStore{}
	svc := NewService(store, authTestConfig(), silentLogger)
	ctx := context.Background()

	user := &users.User{
		ID:    bson.NewObjectID(),
		Email: "admin@test.com",
		Role:  users.RoleAdmin,
	}
	store.On("ValidateCredentials", ctx, "admin@test.com", "123456789").Return(user, nil)

	resp, expiresAt, err := svc.Login(ctx, LoginRequest{
		Email:    "admin@test.com",
		Password: "123456789",
	})
	require.NoError(t, err)

	assert.Equal(t, user, resp.User)
	assert.NotEmpty(t, resp.AccessToken)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	// token round-trips through the verifier
	userID, err := svc.VerifyToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), userID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	store := &MockUserStore{}
	svc := NewService(store, authTestConfig(), silentLogger)
	ctx := context.Background()

	store.On("ValidateCredentials", ctx, "admin@test.com", "wrong").
		Return(nil, users.ErrInvalidCredentials)

	_, _, err := svc.Login(ctx, LoginRequest{
		Email:    "admin@test.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestRegisterAlwaysCreatesPlainUser(t *testing.T) {
	store := &MockUserStore{}
	svc := NewService(store, authTestConfig(), silentLogger)
	ctx := context.Background()

	created := &users.User{ID: bson.NewObjectID(), Email: "john@example.com", Role: users.RoleUser}
	store.On("Create", ctx, mock.MatchedBy(func(req users.CreateUserRequest) bool {
		return req.Role == users.RoleUser
	})).Return(created, nil)

	user, err := svc.Register(ctx, RegisterRequest{
		Email:    "john@example.com",
		Password: "Password123",
		FullName: "John Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, created, user)

	store.AssertExpectations(t)
}

func TestRegisterPropagatesConflict(t *testing.T) {
	store := &MockUserStore{}
	svc := NewService(store, authTestConfig(), silentLogger)
	ctx := context.Background()

	store.On("Create", ctx, mock.AnythingOfType("users.CreateUserRequest")).
		Return(nil, users.ErrEmailTaken)

	_, err := svc.Register(ctx, RegisterRequest{
		Email:    "taken@example.com",
		Password: "Password123",
	})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}
