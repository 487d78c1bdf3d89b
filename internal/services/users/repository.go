package users

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for users repository operations
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context) ([]*User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id bson.ObjectID, patch UpdateUser) (*User, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
