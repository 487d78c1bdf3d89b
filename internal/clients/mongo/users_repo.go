package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volta-cms/internal/logger"
	"volta-cms/internal/services/users"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UsersRepo implements the users.Repository interface for MongoDB
type UsersRepo struct {
	collection *mongo.Collection
}

// NewUsersRepo creates a new users repository and ensures the unique email index
func NewUsersRepo(parentCtx context.Context, db *mongo.Database) (*UsersRepo, error) {
	collection := db.Collection("users")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(parentCtx, OpTimeout)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.L().Debug("index already exists, continuing", "collection", "users")
		} else {
			logger.L().Error("failed to create index", "collection", "users", "error", err)
			return nil, fmt.Errorf("failed to create users collection index: %w", err)
		}
	}

	return &UsersRepo{
		collection: collection,
	}, nil
}

// translateUserNotFound maps the driver ErrNoDocuments to users.ErrUserNotFound.
func translateUserNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return users.ErrUserNotFound
	}
	return err
}

// Create creates a new user in the database
func (r *UsersRepo) Create(ctx context.Context, user *users.User) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.ErrDuplicate
		}
		return err
	}

	return nil
}

// FindAll returns every user, newest first
func (r *UsersRepo) FindAll(ctx context.Context) ([]*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func(ctxToClose context.Context) {
		if cerr := cursor.Close(ctxToClose); cerr != nil {
			logger.L().Error("failed to close cursor", "error", cerr)
		}
	}(ctx)

	var list []*users.User
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// FindByID finds a user by its object id
func (r *UsersRepo) FindByID(ctx context.Context, id bson.ObjectID) (*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var user users.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, translateUserNotFound(err)
	}

	return &user, nil
}

// FindByEmail finds a user by email address
func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var user users.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translateUserNotFound(err)
	}

	return &user, nil
}

// Update applies the provided patch and returns the updated user
func (r *UsersRepo) Update(ctx context.Context, id bson.ObjectID, patch users.UpdateUser) (*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{"_id": id}

	set := bson.M{
		"updated_at": time.Now().UTC(),
	}

	// Only update fields that are provided
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.FullName != nil {
		set["full_name"] = *patch.FullName
	}
	if patch.DateOfBirth != nil {
		set["date_of_birth"] = *patch.DateOfBirth
	}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}

	// Skip the write if only updated_at would be set
	if len(set) == 1 {
		var existing users.User
		if err := r.collection.FindOne(ctx, filter).Decode(&existing); err != nil {
			return nil, translateUserNotFound(err)
		}
		return &existing, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated users.User
	if err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, users.ErrDuplicate
		}
		return nil, translateUserNotFound(err)
	}

	return &updated, nil
}

// Delete removes a user by id
func (r *UsersRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return users.ErrUserNotFound
	}

	return nil
}
