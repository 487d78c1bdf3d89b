package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"volta-cms/internal/config"
	"volta-cms/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	_, err := logger.Init(config.Config{LogLevel: "error", LogFormat: "json"})
	require.NoError(t, err)

	return fiber.New(fiber.Config{ErrorHandler: Handler})
}

func decode(t *testing.T, resp *http.Response) Response {
	t.Helper()
	var out Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSuccessEnvelope(t *testing.T) {
	app := testApp(t)
	app.Get("/things", func(c *fiber.Ctx) error {
		return OK(c, "Things", []string{"a", "b"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, http.StatusOK, body.StatusCode)
	assert.Equal(t, "Things", body.Message)
	assert.Equal(t, "/things", body.Path)
	assert.NotNil(t, body.Data)

	_, err = time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err, "timestamp must be RFC3339")
}

func TestCreatedEnvelope(t *testing.T) {
	app := testApp(t)
	app.Post("/things", func(c *fiber.Ctx) error {
		return Created(c, "Thing created", fiber.Map{"id": "x"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/things", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode(t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, http.StatusCreated, body.StatusCode)
}

func TestErrorEnvelope(t *testing.T) {
	app := testApp(t)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return Fail(E{Status: http.StatusNotFound, Message: "user not found"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Equal(t, "user not found", body.Message)
	assert.Equal(t, "/missing", body.Path)
	assert.Nil(t, body.Data)
}

func TestInvalidInputGroupsFieldErrors(t *testing.T) {
	app := testApp(t)

	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}

	v := validator.New()
	app.Post("/forms", func(c *fiber.Ctx) error {
		return InvalidInput(v.Struct(form{Email: "not-an-email"}))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/forms", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Invalid input", body.Message)
	assert.Contains(t, body.Errors, "Email")
	assert.Contains(t, body.Errors, "Name")
	assert.Contains(t, body.Errors["Email"][0], "valid email")
	assert.Contains(t, body.Errors["Name"][0], "required")
}

func TestInternalErrorIsOpaque(t *testing.T) {
	app := testApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return Fail(E{Status: http.StatusInternalServerError, Message: "db connection string leaked"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Internal Server Error", body.Message, "internals must not leak to clients")
}

func TestUnknownErrorIs500(t *testing.T) {
	app := testApp(t)
	app.Get("/weird", func(c *fiber.Ctx) error {
		return errors.New("some unexpected failure")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/weird", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decode(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "Internal Server Error", body.Message)
}

func TestFiberErrorPassesThrough(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
}
