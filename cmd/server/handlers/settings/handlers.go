package settings

import (
	"context"
	"errors"

	"volta-cms/cmd/server/handlers/handlerutil"
	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/internal/services/settings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// SettingsService defines the interface for the settings service
type SettingsService interface {
	Create(ctx context.Context, req settings.CreateSettingRequest) (*settings.Setting, error)
	List(ctx context.Context) ([]*settings.Setting, error)
	Get(ctx context.Context, id bson.ObjectID) (*settings.Setting, error)
	ListBySection(ctx context.Context, sectionTitle string) ([]*settings.Setting, error)
	Update(ctx context.Context, id bson.ObjectID, req settings.UpdateSettingRequest) (*settings.Setting, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// Handlers contains the settings HTTP handlers
type Handlers struct {
	service   SettingsService
	validator *validator.Validate
}

// NewHandlers creates new settings handlers
func NewHandlers(service SettingsService, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// Create adds a setting under a site section, resolved by section title
// @Summary Create a setting
// @Tags settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body settings.CreateSettingRequest true "Create setting request"
// @Success 201 {object} httperr.Response{data=settings.Setting}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /settings [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req settings.CreateSettingRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "CreateSetting"); err != nil {
		return err
	}

	setting, err := h.service.Create(c.Context(), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "CreateSetting", settings.ErrSectionNotFound, nil)
	}

	return httperr.Created(c, "Setting created", setting)
}

// List returns every setting
// @Summary List settings
// @Tags settings
// @Produce json
// @Success 200 {object} httperr.Response{data=[]settings.Setting}
// @Router /settings [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context())
	if err != nil {
		return handlerutil.HandleServiceError(err, "ListSettings", nil, nil)
	}

	return httperr.OK(c, "Settings", list)
}

// Get returns a single setting by id
// @Summary Get a setting
// @Tags settings
// @Produce json
// @Param id path string true "Setting ID"
// @Success 200 {object} httperr.Response{data=settings.Setting}
// @Failure 404 {object} httperr.Response
// @Router /settings/{id} [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "GetSetting", settings.ErrSettingNotFound)
	if err != nil {
		return err
	}

	setting, err := h.service.Get(c.Context(), id)
	if err != nil {
		return handlerutil.HandleServiceError(err, "GetSetting", settings.ErrSettingNotFound, nil)
	}

	return httperr.OK(c, "Setting", setting)
}

// ListBySection returns the settings of one site section, looked up by title
// @Summary List settings by section title
// @Tags settings
// @Produce json
// @Param title path string true "Section title"
// @Success 200 {object} httperr.Response{data=[]settings.Setting}
// @Router /settings/section/{title} [get]
func (h *Handlers) ListBySection(c *fiber.Ctx) error {
	title := c.Params("title")
	if title == "" {
		return handlerutil.NotFoundError(settings.ErrSectionNotFound)
	}

	list, err := h.service.ListBySection(c.Context(), title)
	if err != nil {
		return handlerutil.HandleServiceError(err, "ListSettingsBySection", settings.ErrSectionNotFound, nil)
	}

	return httperr.OK(c, "Settings", list)
}

// Update applies a partial update to a setting
// @Summary Update a setting
// @Tags settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Setting ID"
// @Param request body settings.UpdateSettingRequest true "Update setting request"
// @Success 200 {object} httperr.Response{data=settings.Setting}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /settings/{id} [patch]
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "UpdateSetting", settings.ErrSettingNotFound)
	if err != nil {
		return err
	}

	var req settings.UpdateSettingRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "UpdateSetting"); err != nil {
		return err
	}

	setting, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		// a bad section title on re-parenting is also a 404
		if errors.Is(err, settings.ErrSectionNotFound) {
			return handlerutil.NotFoundError(settings.ErrSectionNotFound)
		}
		return handlerutil.HandleServiceError(err, "UpdateSetting", settings.ErrSettingNotFound, nil)
	}

	return httperr.OK(c, "Setting updated", setting)
}

// Delete removes a setting
// @Summary Delete a setting
// @Tags settings
// @Produce json
// @Security Bearer
// @Param id path string true "Setting ID"
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /settings/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "DeleteSetting", settings.ErrSettingNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return handlerutil.HandleServiceError(err, "DeleteSetting", settings.ErrSettingNotFound, nil)
	}

	return httperr.OK(c, "Setting deleted", nil)
}
