package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents a top-level product category
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CategoryUpdate carries the fields of a partial category update. Nil fields
// are left untouched in the store.
type CategoryUpdate struct {
	Name  *string
	Slug  *string
	Image *string
}

// CategoryRef is the populated shape of a category reference.
type CategoryRef struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
}
