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

// ProductService defines the interface for product business logic
type ProductService interface {
	Create(ctx context.Context, product domain.Product) (*domain.PopulatedProduct, error)
	List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.PopulatedProduct, pagination.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedProduct, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (*domain.PopulatedProduct, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ValidateSubcategories confirms every identifier resolves to an
	// existing sub-category belonging to the given category. Missing
	// identifiers are reported before wrong-category ones.
	ValidateSubcategories(ctx context.Context, categoryID primitive.ObjectID, subcategoryIDs []primitive.ObjectID) error
}

type productService struct {
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
) ProductService {
	return &productService{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
	}
}

// Create stores a new product. The check sequence is strictly ordered:
// category existence, then sub-category membership, then the write.
func (s *productService) Create(ctx context.Context, product domain.Product) (*domain.PopulatedProduct, error) {
	exists, err := s.categoryRepo.Exists(ctx, product.Category)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &CategoryNotFoundError{ID: product.Category}
	}

	if len(product.Subcategories) > 0 {
		if err := s.ValidateSubcategories(ctx, product.Category, product.Subcategories); err != nil {
			return nil, err
		}
	}

	product.Slug = slug.Make(product.Title)

	if err := s.productRepo.Create(ctx, &product); err != nil {
		return nil, err
	}

	return s.productRepo.FindByIDPopulated(ctx, product.ID)
}

// List returns a page of populated products matching the filter
func (s *productService) List(ctx context.Context, filter query.Filter, page, perPage int) ([]*domain.PopulatedProduct, pagination.Pagination, error) {
	skip := pagination.Skip(page, perPage)

	products, total, err := s.productRepo.List(ctx, filter, skip, perPage)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	return products, pagination.Paginate(total, page, perPage), nil
}

// Get returns a populated product by ID
func (s *productService) Get(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedProduct, error) {
	return s.productRepo.FindByIDPopulated(ctx, id)
}

// Update merges the given fields into the product and revalidates. When the
// request carries sub-categories but no category, the stored product's
// current category is the comparison basis.
func (s *productService) Update(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (*domain.PopulatedProduct, error) {
	current, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Category != nil {
		exists, err := s.categoryRepo.Exists(ctx, *update.Category)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &CategoryNotFoundError{ID: *update.Category}
		}
	}

	if len(update.Subcategories) > 0 {
		targetCategory := current.Category
		if update.Category != nil {
			targetCategory = *update.Category
		}
		if err := s.ValidateSubcategories(ctx, targetCategory, update.Subcategories); err != nil {
			return nil, err
		}
	}

	if update.Title != nil {
		newSlug := slug.Make(*update.Title)
		update.Slug = &newSlug
	}

	if err := s.productRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.productRepo.FindByIDPopulated(ctx, id)
}

// Delete removes a product by ID
func (s *productService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.productRepo.Delete(ctx, id)
}

// ValidateSubcategories deduplicates the input, fetches all matching
// sub-categories in one query, and reports missing identifiers before
// wrong-category ones. Read-only.
func (s *productService) ValidateSubcategories(ctx context.Context, categoryID primitive.ObjectID, subcategoryIDs []primitive.ObjectID) error {
	unique := dedupeIDs(subcategoryIDs)
	if len(unique) == 0 {
		return nil
	}

	found, err := s.subCategoryRepo.FindByIDs(ctx, unique)
	if err != nil {
		return err
	}

	if len(found) < len(unique) {
		foundSet := make(map[primitive.ObjectID]bool, len(found))
		for _, sc := range found {
			foundSet[sc.ID] = true
		}

		missing := []primitive.ObjectID{}
		for _, id := range unique {
			if !foundSet[id] {
				missing = append(missing, id)
			}
		}
		return &SubcategoriesNotFoundError{IDs: missing}
	}

	mismatched := []primitive.ObjectID{}
	for _, sc := range found {
		if sc.Category != categoryID {
			mismatched = append(mismatched, sc.ID)
		}
	}
	if len(mismatched) > 0 {
		return &SubcategoryMismatchError{CategoryID: categoryID, IDs: mismatched}
	}

	return nil
}

func dedupeIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}
