package service

import (
	"context"

	"catalog-api/internal/domain"
	"catalog-api/internal/pagination"
	"catalog-api/internal/query"
	"catalog-api/internal/repository"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	Create(ctx context.Context, name, image string) (*domain.Category, error)
	List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.Category, pagination.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, name, image *string) (*domain.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// Create stores a new category with a derived slug
func (s *categoryService) Create(ctx context.Context, name, image string) (*domain.Category, error) {
	category := &domain.Category{
		Name:  name,
		Slug:  slug.Make(name),
		Image: image,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// List returns a page of categories with the pagination descriptor
func (s *categoryService) List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.Category, pagination.Pagination, error) {
	skip := pagination.Skip(page, perPage)

	categories, total, err := s.categoryRepo.List(ctx, filter, skip, perPage)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	return categories, pagination.Paginate(total, page, perPage), nil
}

// Get returns a category by ID
func (s *categoryService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// Update merges the given fields into the category. A name change recomputes
// the slug.
func (s *categoryService) Update(ctx context.Context, id primitive.ObjectID, name, image *string) (*domain.Category, error) {
	update := domain.CategoryUpdate{Name: name, Image: image}
	if name != nil {
		newSlug := slug.Make(*name)
		update.Slug = &newSlug
	}

	return s.categoryRepo.Update(ctx, id, update)
}

// Delete removes a category. No cascade: existing sub-categories and
// products keep their references.
func (s *categoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.categoryRepo.Delete(ctx, id)
}
