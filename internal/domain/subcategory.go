package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCategory belongs to exactly one parent category.
type SubCategory struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Category  primitive.ObjectID `json:"category" bson:"category"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SubCategoryUpdate carries the fields of a partial sub-category update.
type SubCategoryUpdate struct {
	Name     *string
	Slug     *string
	Category *primitive.ObjectID
}

// PopulatedSubCategory is the read shape with the parent category resolved.
// A dangling category reference populates as nil, not as an error.
type PopulatedSubCategory struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Category  *CategoryRef       `json:"category" bson:"category,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SubCategoryRef is the populated shape of a sub-category reference.
type SubCategoryRef struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}
