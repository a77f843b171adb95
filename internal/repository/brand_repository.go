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
	ErrBrandNotFound      = errors.New("brand not found")
	ErrBrandAlreadyExists = errors.New("brand with this name already exists")
)

// BrandRepository defines the interface for brand data access
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.Brand, int, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Brand, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.BrandUpdate) (*domain.Brand, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type brandRepository struct {
	collection *mongo.Collection
}

// NewBrandRepository creates a new instance of BrandRepository
func NewBrandRepository(db *database.Service) BrandRepository {
	return &brandRepository{collection: db.Collection(database.CollectionBrands)}
}

// Create inserts a new brand
func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	now := time.Now().UTC()
	brand.ID = primitive.NewObjectID()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, brand); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrBrandAlreadyExists
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}

	return nil
}

// List retrieves brands matching the filter with pagination
func (r *brandRepository) List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.Brand, int, error) {
	predicate := filter.BSON()

	total, err := r.collection.CountDocuments(ctx, predicate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, predicate, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}
	defer cursor.Close(ctx)

	brands := []*domain.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, 0, fmt.Errorf("failed to decode brands: %w", err)
	}

	return brands, int(total), nil
}

// FindByID retrieves a brand by ID
func (r *brandRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Brand, error) {
	brand := &domain.Brand{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(brand)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand by ID: %w", err)
	}

	return brand, nil
}

// Update applies a partial update and returns the updated document
func (r *brandRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.BrandUpdate) (*domain.Brand, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	brand := &domain.Brand{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(brand)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBrandNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrBrandAlreadyExists
		}
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	return brand, nil
}

// Delete removes a brand by ID
func (r *brandRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrBrandNotFound
	}

	return nil
}
