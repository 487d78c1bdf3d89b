package sections

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SiteSection is a named content zone of the marketing site, e.g. "navbar"
// or "main_slider". Settings hang off a section by title.
type SiteSection struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Title       string        `bson:"title" json:"title" example:"navbar"`
	Description string        `bson:"description,omitempty" json:"description,omitempty" example:"Navbar settings for the site"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// UpdateSiteSection represents the fields that can be updated on a section
type UpdateSiteSection struct {
	Title       *string
	Description *string
}
