package settings

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"volta-cms/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles settings business logic
type Service struct {
	repo     Repository
	resolver SectionResolver
	log      *slog.Logger
}

// NewService creates a new settings service
func NewService(repo Repository, resolver SectionResolver, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		log:      log,
	}
}

// CreateSettingRequest represents a setting creation request. The section
// is referenced by title and resolved to its id server-side.
type CreateSettingRequest struct {
	SectionTitle string `json:"section_title" validate:"required,min=1" example:"navbar"`
	Key          string `json:"key" validate:"required,min=1" example:"nav_text"`
	Value        string `json:"value" validate:"required" example:"Volta Generators FZE"`
}

// UpdateSettingRequest represents a setting update request
type UpdateSettingRequest struct {
	SectionTitle *string `json:"section_title,omitempty" validate:"omitempty,min=1" example:"footer"`
	Key          *string `json:"key,omitempty" validate:"omitempty,min=1" example:"copyright"`
	Value        *string `json:"value,omitempty" example:"All rights reserved"`
}

// Create creates a new setting anchored to an existing site section.
func (s *Service) Create(ctx context.Context, req CreateSettingRequest) (*Setting, error) {
	sectionID, err := s.resolver.FindByTitle(ctx, req.SectionTitle)
	if err != nil {
		return nil, ErrSectionNotFound
	}

	now := time.Now()
	setting := &Setting{
		ID:           bson.NewObjectID(),
		SectionID:    sectionID,
		SectionTitle: req.SectionTitle,
		Key:          sanitize.Clean(req.Key),
		Value:        req.Value,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, setting); err != nil {
		s.log.Error("failed to create setting", "error", err, "key", setting.Key)
		return nil, errors.New("failed to create setting")
	}

	return setting, nil
}

// List returns every setting.
func (s *Service) List(ctx context.Context) ([]*Setting, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single setting by id.
func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*Setting, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBySection returns the settings belonging to a section title.
func (s *Service) ListBySection(ctx context.Context, sectionTitle string) ([]*Setting, error) {
	return s.repo.FindBySectionTitle(ctx, sectionTitle)
}

// Update applies a partial update to a setting. When the section title
// changes, the new section must exist and the stored section id follows it.
func (s *Service) Update(ctx context.Context, id bson.ObjectID, req UpdateSettingRequest) (*Setting, error) {
	patch := UpdateSetting{
		Value: req.Value,
	}

	if req.Key != nil {
		cleaned := sanitize.Clean(*req.Key)
		patch.Key = &cleaned
	}
	if req.SectionTitle != nil {
		sectionID, err := s.resolver.FindByTitle(ctx, *req.SectionTitle)
		if err != nil {
			return nil, ErrSectionNotFound
		}
		patch.SectionID = &sectionID
		patch.SectionTitle = req.SectionTitle
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return nil, ErrSettingNotFound
		}
		s.log.Error("failed to update setting", "error", err, "setting_id", id.Hex())
		return nil, errors.New("failed to update setting")
	}

	return updated, nil
}

// Delete removes a setting
func (s *Service) Delete(ctx context.Context, id bson.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return ErrSettingNotFound
		}
		s.log.Error("failed to delete setting", "error", err, "setting_id", id.Hex())
		return errors.New("failed to delete setting")
	}
	return nil
}
