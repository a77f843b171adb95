package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the storage shape of a catalog product. References are stored
// as identifiers and resolved at read time.
type Product struct {
	ID                 primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title              string               `json:"title" bson:"title"`
	Slug               string               `json:"slug" bson:"slug"`
	Description        string               `json:"description" bson:"description"`
	Quantity           int                  `json:"quantity" bson:"quantity"`
	Sold               int                  `json:"sold" bson:"sold"`
	Price              float64              `json:"price" bson:"price"`
	PriceAfterDiscount *float64             `json:"priceAfterDiscount,omitempty" bson:"priceAfterDiscount,omitempty"`
	Colors             []string             `json:"colors,omitempty" bson:"colors,omitempty"`
	ImageCover         string               `json:"imageCover" bson:"imageCover"`
	Images             []string             `json:"images,omitempty" bson:"images,omitempty"`
	Category           primitive.ObjectID   `json:"category" bson:"category"`
	Subcategories      []primitive.ObjectID `json:"subcategories,omitempty" bson:"subcategories,omitempty"`
	Brand              *primitive.ObjectID  `json:"brand,omitempty" bson:"brand,omitempty"`
	RatingsAverage     *float64             `json:"ratingsAverage,omitempty" bson:"ratingsAverage,omitempty"`
	RatingsQuantity    int                  `json:"ratingsQuantity" bson:"ratingsQuantity"`
	CreatedAt          time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// ProductUpdate carries the fields of a partial product update. Nil fields
// are left untouched in the store.
type ProductUpdate struct {
	Title              *string
	Slug               *string
	Description        *string
	Quantity           *int
	Sold               *int
	Price              *float64
	PriceAfterDiscount *float64
	Colors             []string
	ImageCover         *string
	Images             []string
	Category           *primitive.ObjectID
	Subcategories      []primitive.ObjectID
	Brand              *primitive.ObjectID
	RatingsAverage     *float64
	RatingsQuantity    *int
}

// PopulatedProduct is the read shape with category, brand and subcategory
// references resolved. Dangling references populate as nil / omitted.
type PopulatedProduct struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id"`
	Title              string             `json:"title" bson:"title"`
	Slug               string             `json:"slug" bson:"slug"`
	Description        string             `json:"description" bson:"description"`
	Quantity           int                `json:"quantity" bson:"quantity"`
	Sold               int                `json:"sold" bson:"sold"`
	Price              float64            `json:"price" bson:"price"`
	PriceAfterDiscount *float64           `json:"priceAfterDiscount,omitempty" bson:"priceAfterDiscount,omitempty"`
	Colors             []string           `json:"colors,omitempty" bson:"colors,omitempty"`
	ImageCover         string             `json:"imageCover" bson:"imageCover"`
	Images             []string           `json:"images,omitempty" bson:"images,omitempty"`
	Category           *CategoryRef       `json:"category" bson:"category,omitempty"`
	Subcategories      []SubCategoryRef   `json:"subcategories,omitempty" bson:"subcategories,omitempty"`
	Brand              *BrandRef          `json:"brand,omitempty" bson:"brand,omitempty"`
	RatingsAverage     *float64           `json:"ratingsAverage,omitempty" bson:"ratingsAverage,omitempty"`
	RatingsQuantity    int                `json:"ratingsQuantity" bson:"ratingsQuantity"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}
