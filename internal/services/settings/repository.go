package settings

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for settings repository operations
type Repository interface {
	Create(ctx context.Context, s *Setting) error
	FindAll(ctx context.Context) ([]*Setting, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*Setting, error)
	FindBySectionTitle(ctx context.Context, sectionTitle string) ([]*Setting, error)
	Update(ctx context.Context, id bson.ObjectID, patch UpdateSetting) (*Setting, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// SectionResolver resolves a site section by its unique title. The settings
// service uses it to anchor settings to an existing section.
type SectionResolver interface {
	FindByTitle(ctx context.Context, title string) (bson.ObjectID, error)
}
