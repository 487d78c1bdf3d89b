package httperr

import (
	"errors"
	"time"

	"volta-cms/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// E represents an HTTP error with status code and message
type E struct {
	Status  int                 `json:"-" example:"400"`
	Message string              `json:"message" example:"Bad Request"`
	Fields  map[string][]string `json:"-"`
}

// Error implements the error interface
func (e E) Error() string {
	return e.Message
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool                `json:"success"`
	StatusCode int                 `json:"statusCode" example:"200"`
	Message    string              `json:"message" example:"OK"`
	Data       any                 `json:"data,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Path       string              `json:"path" example:"/api/v1/users"`
	Timestamp  string              `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}

// Fail returns the error for Fiber's global error handler to process
func Fail(err E) error {
	return err
}

// InvalidInput wraps a validation error and returns the standard response.
// Field-level messages from the validator are grouped per field.
func InvalidInput(err error) error {
	e := E{
		Status:  fiber.StatusBadRequest,
		Message: "Invalid input",
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
		}
		e.Fields = fields
	} else {
		e.Message = "Invalid input: " + err.Error()
	}

	return Fail(e)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "password":
		return "must be at least 8 characters long and contain an uppercase letter, a lowercase letter, and a digit"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed validation on rule '" + fe.Tag() + "'"
	}
}

// InternalError returns an internal server error with the given message
func InternalError(message string) E {
	return E{Status: fiber.StatusInternalServerError, Message: message}
}

// Pre-defined HTTP errors
var (
	ErrBadRequest      = E{Status: fiber.StatusBadRequest, Message: "Bad Request"}
	ErrUnauthorized    = E{Status: fiber.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden       = E{Status: fiber.StatusForbidden, Message: "Forbidden"}
	ErrNotFound        = E{Status: fiber.StatusNotFound, Message: "Not Found"}
	ErrConflict        = E{Status: fiber.StatusConflict, Message: "Conflict"}
	ErrTooManyRequests = E{Status: fiber.StatusTooManyRequests, Message: "Too Many Requests"}
	ErrInternal        = InternalError("Internal Server Error")
)

func envelope(c *fiber.Ctx, status int, success bool, message string, data any, fields map[string][]string) error {
	return c.Status(status).JSON(Response{
		Success:    success,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Errors:     fields,
		Path:       c.Path(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// OK writes a 200 success envelope around data.
func OK(c *fiber.Ctx, message string, data any) error {
	return envelope(c, fiber.StatusOK, true, message, data, nil)
}

// Created writes a 201 success envelope around data.
func Created(c *fiber.Ctx, message string, data any) error {
	return envelope(c, fiber.StatusCreated, true, message, data, nil)
}

// Handler is the global error handler for Fiber. It is the single point
// where errors become response envelopes.
func Handler(c *fiber.Ctx, err error) error {
	var e E
	if errors.As(err, &e) {
		if e.Status >= fiber.StatusInternalServerError {
			logger.L().Error("request failed", "path", c.Path(), "status", e.Status, "error", e.Message)
			// never leak internals to the client
			return envelope(c, e.Status, false, "Internal Server Error", nil, nil)
		}
		return envelope(c, e.Status, false, e.Message, nil, e.Fields)
	}

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		if fiberError.Code >= fiber.StatusInternalServerError {
			logger.L().Error("request failed", "path", c.Path(), "status", fiberError.Code, "error", fiberError.Message)
			return envelope(c, fiberError.Code, false, "Internal Server Error", nil, nil)
		}
		return envelope(c, fiberError.Code, false, fiberError.Message, nil, nil)
	}

	logger.L().Error("unhandled error", "path", c.Path(), "error", err)
	return envelope(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil, nil)
}
