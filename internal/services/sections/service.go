package sections

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"volta-cms/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles site section business logic
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new site sections service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateSectionRequest represents a site section creation request
type CreateSectionRequest struct {
	Title       string `json:"title" validate:"required,min=1" example:"navbar"`
	Description string `json:"description,omitempty" example:"Navbar settings for the site"`
}

// UpdateSectionRequest represents a site section update request
type UpdateSectionRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1" example:"footer"`
	Description *string `json:"description,omitempty" example:"Footer settings for the site"`
}

// Create creates a new site section
func (s *Service) Create(ctx context.Context, req CreateSectionRequest) (*SiteSection, error) {
	now := time.Now()
	section := &SiteSection{
		ID:          bson.NewObjectID(),
		Title:       sanitize.Clean(req.Title),
		Description: sanitize.Clean(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, section); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrTitleTaken
		}
		s.log.Error("failed to create site section", "error", err, "title", section.Title)
		return nil, errors.New("failed to create site section")
	}

	return section, nil
}

// List returns every site section.
func (s *Service) List(ctx context.Context) ([]*SiteSection, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single site section by id.
func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*SiteSection, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByTitle returns a single site section by its unique title.
func (s *Service) GetByTitle(ctx context.Context, title string) (*SiteSection, error) {
	return s.repo.FindByTitle(ctx, title)
}

// FindByTitle resolves a section title to its id. It exists so the settings
// service can anchor settings to sections without depending on this package's
// full surface.
func (s *Service) FindByTitle(ctx context.Context, title string) (bson.ObjectID, error) {
	section, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return bson.ObjectID{}, err
	}
	return section.ID, nil
}

// Update applies a partial update to a site section
func (s *Service) Update(ctx context.Context, id bson.ObjectID, req UpdateSectionRequest) (*SiteSection, error) {
	patch := UpdateSiteSection{}
	if req.Title != nil {
		cleaned := sanitize.Clean(*req.Title)
		patch.Title = &cleaned
	}
	if req.Description != nil {
		cleaned := sanitize.Clean(*req.Description)
		patch.Description = &cleaned
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			return nil, ErrSectionNotFound
		}
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrTitleTaken
		}
		s.log.Error("failed to update site section", "error", err, "section_id", id.Hex())
		return nil, errors.New("failed to update site section")
	}

	return updated, nil
}

// Delete removes a site section
func (s *Service) Delete(ctx context.Context, id bson.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			return ErrSectionNotFound
		}
		s.log.Error("failed to delete site section", "error", err, "section_id", id.Hex())
		return errors.New("failed to delete site section")
	}
	return nil
}
