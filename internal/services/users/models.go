package users

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the closed set of user roles known to the system.
// Guards currently only distinguish admin from the rest.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleStaff     Role = "staff"
)

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator, RoleStaff:
		return true
	}
	return false
}

// User represents an account able to sign in to the CMS
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Email        string        `bson:"email" json:"email" example:"admin@test.com"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	FullName     string        `bson:"full_name,omitempty" json:"full_name,omitempty" example:"System Administrator"`
	DateOfBirth  *time.Time    `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty" example:"1990-01-01T00:00:00Z"`
	Role         Role          `bson:"role" json:"role" example:"user"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// UpdateUser represents the fields that can be changed on an existing user.
// PasswordHash carries an already-hashed credential, never the plaintext.
type UpdateUser struct {
	Email        *string
	FullName     *string
	DateOfBirth  *time.Time
	PasswordHash *string
	Role         *Role
}
