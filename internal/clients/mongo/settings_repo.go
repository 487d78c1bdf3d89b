package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volta-cms/internal/logger"
	"volta-cms/internal/services/settings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SettingsRepo implements the settings.Repository interface for MongoDB
type SettingsRepo struct {
	collection *mongo.Collection
}

// NewSettingsRepo creates a new settings repository. Settings are looked up
// by section title, so that field gets a plain index.
func NewSettingsRepo(parentCtx context.Context, db *mongo.Database) (*SettingsRepo, error) {
	collection := db.Collection("settings")

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "section_title", Value: 1}},
	}

	ctx, cancel := context.WithTimeout(parentCtx, OpTimeout)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.L().Debug("index already exists, continuing", "collection", "settings")
		} else {
			logger.L().Error("failed to create index", "collection", "settings", "error", err)
			return nil, fmt.Errorf("failed to create settings collection index: %w", err)
		}
	}

	return &SettingsRepo{
		collection: collection,
	}, nil
}

func translateSettingNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return settings.ErrSettingNotFound
	}
	return err
}

// Create creates a new setting in the database
func (r *SettingsRepo) Create(ctx context.Context, setting *settings.Setting) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, setting)
	return err
}

// FindAll returns every setting in insertion order
func (r *SettingsRepo) FindAll(ctx context.Context) ([]*settings.Setting, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func(ctxToClose context.Context) {
		if cerr := cursor.Close(ctxToClose); cerr != nil {
			logger.L().Error("failed to close cursor", "error", cerr)
		}
	}(ctx)

	var list []*settings.Setting
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// FindByID finds a setting by its object id
func (r *SettingsRepo) FindByID(ctx context.Context, id bson.ObjectID) (*settings.Setting, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var setting settings.Setting
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&setting); err != nil {
		return nil, translateSettingNotFound(err)
	}

	return &setting, nil
}

// FindBySectionTitle returns the settings belonging to a section title
func (r *SettingsRepo) FindBySectionTitle(ctx context.Context, sectionTitle string) ([]*settings.Setting, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"section_title": sectionTitle}, opts)
	if err != nil {
		return nil, err
	}
	defer func(ctxToClose context.Context) {
		if cerr := cursor.Close(ctxToClose); cerr != nil {
			logger.L().Error("failed to close cursor", "error", cerr)
		}
	}(ctx)

	var list []*settings.Setting
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// Update applies the provided patch and returns the updated setting
func (r *SettingsRepo) Update(ctx context.Context, id bson.ObjectID, patch settings.UpdateSetting) (*settings.Setting, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{"_id": id}

	set := bson.M{
		"updated_at": time.Now().UTC(),
	}

	if patch.SectionID != nil {
		set["section_id"] = *patch.SectionID
	}
	if patch.SectionTitle != nil {
		set["section_title"] = *patch.SectionTitle
	}
	if patch.Key != nil {
		set["key"] = *patch.Key
	}
	if patch.Value != nil {
		set["value"] = *patch.Value
	}

	if len(set) == 1 {
		var existing settings.Setting
		if err := r.collection.FindOne(ctx, filter).Decode(&existing); err != nil {
			return nil, translateSettingNotFound(err)
		}
		return &existing, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated settings.Setting
	if err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, translateSettingNotFound(err)
	}

	return &updated, nil
}

// Delete removes a setting by id
func (r *SettingsRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return settings.ErrSettingNotFound
	}

	return nil
}
