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

// SubCategoryService defines the interface for sub-category business logic
type SubCategoryService interface {
	Create(ctx context.Context, name string, categoryID primitive.ObjectID) (*domain.PopulatedSubCategory, error)
	List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.PopulatedSubCategory, pagination.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedSubCategory, error)
	Update(ctx context.Context, id primitive.ObjectID, name *string, categoryID *primitive.ObjectID) (*domain.PopulatedSubCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type subCategoryService struct {
	subCategoryRepo repository.SubCategoryRepository
	categoryRepo    repository.CategoryRepository
}

// NewSubCategoryService creates a new instance of SubCategoryService
func NewSubCategoryService(
	subCategoryRepo repository.SubCategoryRepository,
	categoryRepo repository.CategoryRepository,
) SubCategoryService {
	return &subCategoryService{
		subCategoryRepo: subCategoryRepo,
		categoryRepo:    categoryRepo,
	}
}

// Create stores a new sub-category after verifying the parent category
// exists
func (s *subCategoryService) Create(ctx context.Context, name string, categoryID primitive.ObjectID) (*domain.PopulatedSubCategory, error) {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &CategoryNotFoundError{ID: categoryID}
	}

	subCategory := &domain.SubCategory{
		Name:     name,
		Slug:     slug.Make(name),
		Category: categoryID,
	}

	if err := s.subCategoryRepo.Create(ctx, subCategory); err != nil {
		return nil, err
	}

	return s.subCategoryRepo.FindByID(ctx, subCategory.ID)
}

// List returns a page of sub-categories with parent categories populated
func (s *subCategoryService) List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.PopulatedSubCategory, pagination.Pagination, error) {
	skip := pagination.Skip(page, perPage)

	subCategories, total, err := s.subCategoryRepo.List(ctx, filter, skip, perPage)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	return subCategories, pagination.Paginate(total, page, perPage), nil
}

// Get returns a sub-category by ID with the parent category populated
func (s *subCategoryService) Get(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedSubCategory, error) {
	return s.subCategoryRepo.FindByID(ctx, id)
}

// Update merges the given fields into the sub-category. A category change is
// re-verified against existing categories; a name change recomputes the slug.
func (s *subCategoryService) Update(ctx context.Context, id primitive.ObjectID, name *string, categoryID *primitive.ObjectID) (*domain.PopulatedSubCategory, error) {
	if categoryID != nil {
		exists, err := s.categoryRepo.Exists(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &CategoryNotFoundError{ID: *categoryID}
		}
	}

	update := domain.SubCategoryUpdate{Name: name, Category: categoryID}
	if name != nil {
		newSlug := slug.Make(*name)
		update.Slug = &newSlug
	}

	if _, err := s.subCategoryRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.subCategoryRepo.FindByID(ctx, id)
}

// Delete removes a sub-category by ID
func (s *subCategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.subCategoryRepo.Delete(ctx, id)
}
