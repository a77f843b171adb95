package service

import (
	"context"
	"errors"
	"testing"

	"catalog-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestSubCategoryService() (SubCategoryService, *mockSubCategoryRepository, *mockCategoryRepository) {
	subCategoryRepo := newMockSubCategoryRepository()
	categoryRepo := newMockCategoryRepository()
	return NewSubCategoryService(subCategoryRepo, categoryRepo), subCategoryRepo, categoryRepo
}

func TestSubCategoryCreateRequiresExistingCategory(t *testing.T) {
	svc, _, _ := newTestSubCategoryService()
	ctx := context.Background()

	ghost := primitive.NewObjectID()
	_, err := svc.Create(ctx, "Laptops", ghost)

	var notFound *CategoryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected CategoryNotFoundError, got %v", err)
	}
	if notFound.ID != ghost {
		t.Errorf("Expected error to name %s, got %s", ghost.Hex(), notFound.ID.Hex())
	}
}

func TestSubCategoryCreateDerivesSlugAndPopulatesCategory(t *testing.T) {
	svc, _, categoryRepo := newTestSubCategoryService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")

	created, err := svc.Create(ctx, "Gaming Laptops", categoryID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Slug != "gaming-laptops" {
		t.Errorf("Expected slug gaming-laptops, got %s", created.Slug)
	}
	if created.Category == nil || created.Category.ID != categoryID {
		t.Errorf("Expected populated category %s, got %+v", categoryID.Hex(), created.Category)
	}
}

func TestSubCategoryUpdateVerifiesNewCategory(t *testing.T) {
	svc, _, categoryRepo := newTestSubCategoryService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")
	created, err := svc.Create(ctx, "Laptops", categoryID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ghost := primitive.NewObjectID()
	_, err = svc.Update(ctx, created.ID, nil, &ghost)

	var notFound *CategoryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected CategoryNotFoundError, got %v", err)
	}
}

func TestSubCategoryUpdateRecomputesSlugOnNameChange(t *testing.T) {
	svc, _, categoryRepo := newTestSubCategoryService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")
	created, err := svc.Create(ctx, "Laptops", categoryID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newName := "Gaming Laptops"
	updated, err := svc.Update(ctx, created.ID, &newName, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Slug != "gaming-laptops" {
		t.Errorf("Expected slug gaming-laptops, got %s", updated.Slug)
	}
}

func TestSubCategoryDeleteUnknownFails(t *testing.T) {
	svc, _, _ := newTestSubCategoryService()
	ctx := context.Background()

	err := svc.Delete(ctx, primitive.NewObjectID())
	if !errors.Is(err, repository.ErrSubCategoryNotFound) {
		t.Errorf("Expected ErrSubCategoryNotFound, got %v", err)
	}
}
