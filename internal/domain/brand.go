package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand represents a product brand
type Brand struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BrandUpdate carries the fields of a partial brand update.
type BrandUpdate struct {
	Name  *string
	Slug  *string
	Image *string
}

// BrandRef is the populated shape of a brand reference.
type BrandRef struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
}
