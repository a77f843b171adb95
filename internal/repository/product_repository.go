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
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	// List retrieves populated products matching the filter together with
	// the total match count.
	List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.PopulatedProduct, int, error)
	// FindByID returns the raw storage document. Used where the stored
	// category reference is needed as written, e.g. the membership check
	// on update.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	// FindByIDPopulated returns the read shape with category, brand and
	// subcategories resolved.
	FindByIDPopulated(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedProduct, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *database.Service) ProductRepository {
	return &productRepository{collection: db.Collection(database.CollectionProducts)}
}

// populationStages resolves the category, brand and subcategory references.
// Dangling single references unwind to absent fields; dangling members of
// the subcategories array are dropped from the populated list.
func populationStages() []bson.D {
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
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollectionBrands,
			"localField":   "brand",
			"foreignField": "_id",
			"as":           "brand",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$brand",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollectionSubCategories,
			"localField":   "subcategories",
			"foreignField": "_id",
			"as":           "subcategories",
		}}},
	}
}

// Create inserts a new product
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// List retrieves populated products matching the filter with pagination
func (r *productRepository) List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.PopulatedProduct, int, error) {
	predicate := filter.BSON()

	total, err := r.collection.CountDocuments(ctx, predicate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: predicate}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: int64(skip)}},
		{{Key: "$limit", Value: int64(limit)}},
	}
	pipeline = append(pipeline, populationStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*domain.PopulatedProduct{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, int(total), nil
}

// FindByID retrieves the raw product document by ID
func (r *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// FindByIDPopulated retrieves a product by ID with references resolved
func (r *productRepository) FindByIDPopulated(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedProduct, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, populationStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*domain.PopulatedProduct{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}

	return products[0], nil
}

// Update applies a partial update to a product
func (r *productRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Sold != nil {
		set["sold"] = *update.Sold
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.PriceAfterDiscount != nil {
		set["priceAfterDiscount"] = *update.PriceAfterDiscount
	}
	if update.Colors != nil {
		set["colors"] = update.Colors
	}
	if update.ImageCover != nil {
		set["imageCover"] = *update.ImageCover
	}
	if update.Images != nil {
		set["images"] = update.Images
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Subcategories != nil {
		set["subcategories"] = update.Subcategories
	}
	if update.Brand != nil {
		set["brand"] = *update.Brand
	}
	if update.RatingsAverage != nil {
		set["ratingsAverage"] = *update.RatingsAverage
	}
	if update.RatingsQuantity != nil {
		set["ratingsQuantity"] = *update.RatingsQuantity
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID
func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}

	return nil
}
