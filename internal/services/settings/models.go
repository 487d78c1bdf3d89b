package settings

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Setting is a key/value content entry scoped to a site section. Values are
// free-form strings; structured content is stored as JSON text.
type Setting struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	SectionID    bson.ObjectID `bson:"section_id" json:"section_id" example:"683cdb8aa96ad71e8e075bd0"`
	SectionTitle string        `bson:"section_title" json:"section_title" example:"navbar"`
	Key          string        `bson:"key" json:"key" example:"nav_text"`
	Value        string        `bson:"value" json:"value" example:"Volta Generators FZE"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// UpdateSetting represents the fields that can be updated on a setting.
// SectionID/SectionTitle move together when the setting changes section.
type UpdateSetting struct {
	SectionID    *bson.ObjectID
	SectionTitle *string
	Key          *string
	Value        *string
}
