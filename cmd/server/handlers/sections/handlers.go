package sections

import (
	"context"

	"volta-cms/cmd/server/handlers/handlerutil"
	"volta-cms/cmd/server/handlers/httperr"
	"volta-cms/internal/services/sections"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// SectionsService defines the interface for the site sections service
type SectionsService interface {
	Create(ctx context.Context, req sections.CreateSectionRequest) (*sections.SiteSection, error)
	List(ctx context.Context) ([]*sections.SiteSection, error)
	Get(ctx context.Context, id bson.ObjectID) (*sections.SiteSection, error)
	Update(ctx context.Context, id bson.ObjectID, req sections.UpdateSectionRequest) (*sections.SiteSection, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// Handlers contains the site sections HTTP handlers
type Handlers struct {
	service   SectionsService
	validator *validator.Validate
}

// NewHandlers creates new site sections handlers
func NewHandlers(service SectionsService, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// Create adds a site section
// @Summary Create a site section
// @Tags site-sections
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body sections.CreateSectionRequest true "Create section request"
// @Success 201 {object} httperr.Response{data=sections.SiteSection}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /site-sections [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req sections.CreateSectionRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "CreateSection"); err != nil {
		return err
	}

	section, err := h.service.Create(c.Context(), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "CreateSection", nil, sections.ErrTitleTaken)
	}

	return httperr.Created(c, "Site section created", section)
}

// List returns every site section
// @Summary List site sections
// @Tags site-sections
// @Produce json
// @Success 200 {object} httperr.Response{data=[]sections.SiteSection}
// @Router /site-sections [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context())
	if err != nil {
		return handlerutil.HandleServiceError(err, "ListSections", nil, nil)
	}

	return httperr.OK(c, "Site sections", list)
}

// Get returns a single site section by id
// @Summary Get a site section
// @Tags site-sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} httperr.Response{data=sections.SiteSection}
// @Failure 404 {object} httperr.Response
// @Router /site-sections/{id} [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "GetSection", sections.ErrSectionNotFound)
	if err != nil {
		return err
	}

	section, err := h.service.Get(c.Context(), id)
	if err != nil {
		return handlerutil.HandleServiceError(err, "GetSection", sections.ErrSectionNotFound, nil)
	}

	return httperr.OK(c, "Site section", section)
}

// Update applies a partial update to a site section
// @Summary Update a site section
// @Tags site-sections
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Section ID"
// @Param request body sections.UpdateSectionRequest true "Update section request"
// @Success 200 {object} httperr.Response{data=sections.SiteSection}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /site-sections/{id} [patch]
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "UpdateSection", sections.ErrSectionNotFound)
	if err != nil {
		return err
	}

	var req sections.UpdateSectionRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "UpdateSection"); err != nil {
		return err
	}

	section, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "UpdateSection", sections.ErrSectionNotFound, sections.ErrTitleTaken)
	}

	return httperr.OK(c, "Site section updated", section)
}

// Delete removes a site section
// @Summary Delete a site section
// @Tags site-sections
// @Produce json
// @Security Bearer
// @Param id path string true "Section ID"
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /site-sections/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractID(c, "DeleteSection", sections.ErrSectionNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return handlerutil.HandleServiceError(err, "DeleteSection", sections.ErrSectionNotFound, nil)
	}

	return httperr.OK(c, "Site section deleted", nil)
}
