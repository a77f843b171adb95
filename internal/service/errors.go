package service

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryNotFoundError reports a category reference that does not resolve
// to an existing category.
type CategoryNotFoundError struct {
	ID primitive.ObjectID
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("Category not found with id: %s", e.ID.Hex())
}

// SubcategoriesNotFoundError reports the requested sub-category identifiers
// that do not exist. Reported before any membership check.
type SubcategoriesNotFoundError struct {
	IDs []primitive.ObjectID
}

func (e *SubcategoriesNotFoundError) Error() string {
	return fmt.Sprintf("Sub-categories not found: %s", joinIDs(e.IDs))
}

// SubcategoryMismatchError reports sub-categories that exist but belong to a
// different category than the product's.
type SubcategoryMismatchError struct {
	CategoryID primitive.ObjectID
	IDs        []primitive.ObjectID
}

func (e *SubcategoryMismatchError) Error() string {
	return fmt.Sprintf("Sub-categories do not belong to category %s: %s", e.CategoryID.Hex(), joinIDs(e.IDs))
}

func joinIDs(ids []primitive.ObjectID) string {
	hex := make([]string, len(ids))
	for i, id := range ids {
		hex[i] = id.Hex()
	}
	return strings.Join(hex, ", ")
}
