package handlerutil

import (
	"errors"

	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// NotFoundError wraps a service-level not-found error as a 404 response.
func NotFoundError(err error) error {
	return httperr.Fail(httperr.E{
		Status:  fiber.StatusNotFound,
		Message: err.Error(),
	})
}

// ConflictError wraps a uniqueness violation as a 409 response.
func ConflictError(err error) error {
	return httperr.Fail(httperr.E{
		Status:  fiber.StatusConflict,
		Message: err.Error(),
	})
}

// ParseAndValidateBody parses request body and validates it
func ParseAndValidateBody(c *fiber.Ctx, req any, validator *validator.Validate, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validator.Struct(req); err != nil {
		logger.L().Warn("request validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// ParseAndValidateQuery parses query parameters and validates them
func ParseAndValidateQuery(c *fiber.Ctx, req any, validator *validator.Validate, handlerName string) error {
	if err := c.QueryParser(req); err != nil {
		logger.L().Warn("failed to parse query params", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validator.Struct(req); err != nil {
		logger.L().Warn("query validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// ExtractID extracts and validates an object id from the :id URL parameter.
// A missing or malformed id behaves like a lookup miss.
func ExtractID(c *fiber.Ctx, handlerName string, notFoundErr error) (bson.ObjectID, error) {
	idStr := c.Params("id")
	if idStr == "" {
		logger.L().Warn("missing id parameter", "handler", handlerName, "path", c.Path())
		return bson.ObjectID{}, NotFoundError(notFoundErr)
	}

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		logger.L().Warn("invalid id parameter", "handler", handlerName, "id", idStr, "error", err)
		return bson.ObjectID{}, NotFoundError(notFoundErr)
	}

	return id, nil
}

// HandleServiceError maps common service errors to HTTP responses.
// notFoundErr becomes a 404, conflictErr a 409, anything else a logged 500.
func HandleServiceError(err error, handlerName string, notFoundErr, conflictErr error) error {
	if notFoundErr != nil && errors.Is(err, notFoundErr) {
		logger.L().Info("resource not found", "handler", handlerName, "error", err)
		return NotFoundError(notFoundErr)
	}

	if conflictErr != nil && errors.Is(err, conflictErr) {
		logger.L().Info("uniqueness conflict", "handler", handlerName, "error", err)
		return ConflictError(conflictErr)
	}

	logger.L().Error("service operation failed", "handler", handlerName, "error", err)
	return httperr.Fail(httperr.E{
		Status:  fiber.StatusInternalServerError,
		Message: err.Error(),
	})
}
