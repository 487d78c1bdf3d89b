package users

import (
	"context"
	"net/http"
	"testing"

	"volta-cms/cmd/server/testutil"
	"volta-cms/internal/services/users"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MockUsersService is a mock implementation of UsersService
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) Create(ctx context.Context, req users.CreateUserRequest) (*users.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUsersService) List(ctx context.Context) ([]*users.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUsersService) Get(ctx context.Context, id bson.ObjectID) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUsersService) Update(ctx context.Context, id bson.ObjectID, req users.UpdateUserRequest) (*users.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUsersService) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func usersTestApp(t *testing.T, svc *MockUsersService) *fiber.App {
	t.Helper()
	app := testutil.CreateTestApp(t)
	h := NewHandlers(svc, testutil.CreateTestValidator(t))

	app.Post("/users", h.Create)
	app.Get("/users", h.List)
	app.Get("/users/:id", h.Get)
	app.Patch("/users/:id", h.Update)
	app.Delete("/users/:id", h.Delete)

	return app
}

func TestCreateUser(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	user := &users.User{ID: bson.NewObjectID(), Email: "jane@example.com", Role: users.RoleUser}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req users.CreateUserRequest) bool {
		return req.Email == "jane@example.com"
	})).Return(user, nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, "/users", fiber.Map{
		"email":    "jane@example.com",
		"password": "Password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, "User created", body.Message)
	svc.AssertExpectations(t)
}

func TestCreateUserWeakPassword(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, "/users", fiber.Map{
		"email":    "jane@example.com",
		"password": "short",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	assert.Contains(t, body.Errors, "Password")
	svc.AssertNotCalled(t, "Create")
}

func TestCreateUserEmailTaken(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	svc.On("Create", mock.Anything, mock.Anything).Return(nil, users.ErrEmailTaken)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, "/users", fiber.Map{
		"email":    "jane@example.com",
		"password": "Password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestListUsers(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	svc.On("List", mock.Anything).Return([]*users.User{
		{ID: bson.NewObjectID(), Email: "a@test.com"},
		{ID: bson.NewObjectID(), Email: "b@test.com"},
	}, nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, "/users", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	list, ok := body.Data.([]any)
	require.True(t, ok)
	assert.Len(t, list, 2)
}

func TestGetUserBadID(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	// a malformed object id behaves like a miss
	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, "/users/not-an-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	assert.Equal(t, users.ErrUserNotFound.Error(), body.Message)
	svc.AssertNotCalled(t, "Get")
}

func TestGetUserNotFound(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	id := bson.NewObjectID()
	svc.On("Get", mock.Anything, id).Return(nil, users.ErrUserNotFound)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, "/users/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateUserConflict(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	id := bson.NewObjectID()
	svc.On("Update", mock.Anything, id, mock.Anything).Return(nil, users.ErrEmailTaken)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPatch, "/users/"+id.Hex(), fiber.Map{
		"email": "taken@example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	svc := &MockUsersService{}
	app := usersTestApp(t, svc)

	id := bson.NewObjectID()
	svc.On("Delete", mock.Anything, id).Return(nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodDelete, "/users/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	assert.Equal(t, "User deleted", body.Message)
	svc.AssertExpectations(t)
}
