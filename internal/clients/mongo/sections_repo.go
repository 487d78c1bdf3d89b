package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volta-cms/internal/logger"
	"volta-cms/internal/services/sections"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SectionsRepo implements the sections.Repository interface for MongoDB
type SectionsRepo struct {
	collection *mongo.Collection
}

// NewSectionsRepo creates a new site sections repository and ensures the
// unique title index
func NewSectionsRepo(parentCtx context.Context, db *mongo.Database) (*SectionsRepo, error) {
	collection := db.Collection("site_sections")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(parentCtx, OpTimeout)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.L().Debug("index already exists, continuing", "collection", "site_sections")
		} else {
			logger.L().Error("failed to create index", "collection", "site_sections", "error", err)
			return nil, fmt.Errorf("failed to create site_sections collection index: %w", err)
		}
	}

	return &SectionsRepo{
		collection: collection,
	}, nil
}

func translateSectionNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return sections.ErrSectionNotFound
	}
	return err
}

// Create creates a new site section in the database
func (r *SectionsRepo) Create(ctx context.Context, section *sections.SiteSection) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, section)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return sections.ErrDuplicate
		}
		return err
	}

	return nil
}

// FindAll returns every site section in insertion order
func (r *SectionsRepo) FindAll(ctx context.Context) ([]*sections.SiteSection, error) {
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

	var list []*sections.SiteSection
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// FindByID finds a site section by its object id
func (r *SectionsRepo) FindByID(ctx context.Context, id bson.ObjectID) (*sections.SiteSection, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var section sections.SiteSection
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&section); err != nil {
		return nil, translateSectionNotFound(err)
	}

	return &section, nil
}

// FindByTitle finds a site section by its unique title
func (r *SectionsRepo) FindByTitle(ctx context.Context, title string) (*sections.SiteSection, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var section sections.SiteSection
	if err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&section); err != nil {
		return nil, translateSectionNotFound(err)
	}

	return &section, nil
}

// Update applies the provided patch and returns the updated section
func (r *SectionsRepo) Update(ctx context.Context, id bson.ObjectID, patch sections.UpdateSiteSection) (*sections.SiteSection, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{"_id": id}

	set := bson.M{
		"updated_at": time.Now().UTC(),
	}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	if len(set) == 1 {
		var existing sections.SiteSection
		if err := r.collection.FindOne(ctx, filter).Decode(&existing); err != nil {
			return nil, translateSectionNotFound(err)
		}
		return &existing, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated sections.SiteSection
	if err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, sections.ErrDuplicate
		}
		return nil, translateSectionNotFound(err)
	}

	return &updated, nil
}

// Delete removes a site section by id
func (r *SectionsRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return sections.ErrSectionNotFound
	}

	return nil
}
