package sections

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for site section repository operations
type Repository interface {
	Create(ctx context.Context, s *SiteSection) error
	FindAll(ctx context.Context) ([]*SiteSection, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*SiteSection, error)
	FindByTitle(ctx context.Context, title string) (*SiteSection, error)
	Update(ctx context.Context, id bson.ObjectID, patch UpdateSiteSection) (*SiteSection, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
