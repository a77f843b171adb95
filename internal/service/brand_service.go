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

// BrandService defines the interface for brand business logic
type BrandService interface {
	Create(ctx context.Context, name, image string) (*domain.Brand, error)
	List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.Brand, pagination.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Brand, error)
	Update(ctx context.Context, id primitive.ObjectID, name, image *string) (*domain.Brand, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type brandService struct {
	brandRepo repository.BrandRepository
}

// NewBrandService creates a new instance of BrandService
func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

// Create stores a new brand with a derived slug
func (s *brandService) Create(ctx context.Context, name, image string) (*domain.Brand, error) {
	brand := &domain.Brand{
		Name:  name,
		Slug:  slug.Make(name),
		Image: image,
	}

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}

	return brand, nil
}

// List returns a page of brands with the pagination descriptor
func (s *brandService) List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.Brand, pagination.Pagination, error) {
	skip := pagination.Skip(page, perPage)

	brands, total, err := s.brandRepo.List(ctx, filter, skip, perPage)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	return brands, pagination.Paginate(total, page, perPage), nil
}

// Get returns a brand by ID
func (s *brandService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Brand, error) {
	return s.brandRepo.FindByID(ctx, id)
}

// Update merges the given fields into the brand, recomputing the slug on a
// name change
func (s *brandService) Update(ctx context.Context, id primitive.ObjectID, name, image *string) (*domain.Brand, error) {
	update := domain.BrandUpdate{Name: name, Image: image}
	if name != nil {
		newSlug := slug.Make(*name)
		update.Slug = &newSlug
	}

	return s.brandRepo.Update(ctx, id, update)
}

// Delete removes a brand by ID
func (s *brandService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.brandRepo.Delete(ctx, id)
}
