package service

import (
	"context"
	"errors"
	"testing"

	"catalog-api/internal/repository"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCategoryCreateDerivesSlug(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Home & Garden", "https://example.com/img.png")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Slug != "home-and-garden" {
		t.Errorf("Expected slug home-and-garden, got %s", created.Slug)
	}
	if created.ID.IsZero() {
		t.Error("Expected generated id")
	}
}

func TestCategoryUpdateRecomputesSlugOnlyOnNameChange(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Electronics", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	image := "https://example.com/new.png"
	updated, err := svc.Update(ctx, created.ID, nil, &image)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Slug != "electronics" {
		t.Errorf("Slug must survive an image-only update, got %s", updated.Slug)
	}

	name := "Consumer Electronics"
	updated, err = svc.Update(ctx, created.ID, &name, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Slug != "consumer-electronics" {
		t.Errorf("Expected slug consumer-electronics, got %s", updated.Slug)
	}
}

func TestCategoryGetUnknownFails(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())
	ctx := context.Background()

	_, err := svc.Get(ctx, primitive.NewObjectID())
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProperty_SlugIsStableAcrossWrites(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("update to the same name keeps the same slug", prop.ForAll(
		func(name string) bool {
			svc := NewCategoryService(newMockCategoryRepository())
			ctx := context.Background()

			created, err := svc.Create(ctx, name, "")
			if err != nil {
				return false
			}

			updated, err := svc.Update(ctx, created.ID, &name, nil)
			if err != nil {
				return false
			}
			return updated.Slug == created.Slug
		},
		gen.RegexMatch(`[A-Za-z]{3,20}( [A-Za-z]{3,20})?`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
