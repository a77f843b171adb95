package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-api/internal/database"
	"catalog-api/internal/domain"
	"catalog-api/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrSubCategoryNotFound      = errors.New("sub-category not found")
	ErrSubCategoryAlreadyExists = errors.New("sub-category with this name already exists")
)

// SubCategoryRepository defines the interface for sub-category data access
type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *domain.SubCategory) error
	List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.PopulatedSubCategory, int, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedSubCategory, error)
	// FindByIDs fetches the raw sub-category documents for the given set of
	// identifiers. Missing identifiers are simply absent from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.SubCategory, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.SubCategoryUpdate) (*domain.SubCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type subCategoryRepository struct {
	collection *mongo.Collection
}

// NewSubCategoryRepository creates a new instance of SubCategoryRepository
func NewSubCategoryRepository(db *database.Service) SubCategoryRepository {
	return &subCategoryRepository{collection: db.Collection(database.CollectionSubCategories)}
}

// categoryLookup resolves the parent category reference. A dangling
// reference unwinds to an absent field, not an error.
func categoryLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollectionCategories,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// Create inserts a new sub-category
func (r *subCategoryRepository) Create(ctx context.Context, subCategory *domain.SubCategory) error {
	now := time.Now().UTC()
	subCategory.ID = primitive.NewObjectID()
	subCategory.CreatedAt = now
	subCategory.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, subCategory); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSubCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create sub-category: %w", err)
	}

	return nil
}

// List retrieves sub-categories matching the filter, with the parent
// category populated
func (r *subCategoryRepository) List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.PopulatedSubCategory, int, error) {
	predicate := filter.BSON()

	total, err := r.collection.CountDocuments(ctx, predicate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sub-categories: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: predicate}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: int64(skip)}},
		{{Key: "$limit", Value: int64(limit)}},
	}
	pipeline = append(pipeline, categoryLookup()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sub-categories: %w", err)
	}
	defer cursor.Close(ctx)

	subCategories := []*domain.PopulatedSubCategory{}
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, 0, fmt.Errorf("failed to decode sub-categories: %w", err)
	}

	return subCategories, int(total), nil
}

// FindByID retrieves a sub-category by ID with the parent category populated
func (r *subCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedSubCategory, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, categoryLookup()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to find sub-category by ID: %w", err)
	}
	defer cursor.Close(ctx)

	subCategories := []*domain.PopulatedSubCategory{}
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, fmt.Errorf("failed to decode sub-category: %w", err)
	}
	if len(subCategories) == 0 {
		return nil, ErrSubCategoryNotFound
	}

	return subCategories[0], nil
}

// FindByIDs retrieves the raw documents whose identifier is in the set
func (r *subCategoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.SubCategory, error) {
	if len(ids) == 0 {
		return []*domain.SubCategory{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find sub-categories by IDs: %w", err)
	}
	defer cursor.Close(ctx)

	subCategories := []*domain.SubCategory{}
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, fmt.Errorf("failed to decode sub-categories: %w", err)
	}

	return subCategories, nil
}

// Update applies a partial update and returns the updated raw document
func (r *subCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.SubCategoryUpdate) (*domain.SubCategory, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	subCategory := &domain.SubCategory{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(subCategory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubCategoryNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSubCategoryAlreadyExists
		}
		return nil, fmt.Errorf("failed to update sub-category: %w", err)
	}

	return subCategory, nil
}

// Delete removes a sub-category by ID
func (r *subCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete sub-category: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrSubCategoryNotFound
	}

	return nil
}
