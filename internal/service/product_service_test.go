package service

import (
	"context"
	"errors"
	"testing"

	"catalog-api/internal/domain"
	"catalog-api/internal/pagination"
	"catalog-api/internal/query"
	"catalog-api/internal/repository"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock repositories for testing

type mockCategoryRepository struct {
	categories map[primitive.ObjectID]*domain.Category
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[primitive.ObjectID]*domain.Category)}
}

func (m *mockCategoryRepository) add(name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	m.categories[id] = &domain.Category{ID: id, Name: name}
	return id
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	category.ID = primitive.NewObjectID()
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.Category, int, error) {
	categories := []*domain.Category{}
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	return categories, len(categories), nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.CategoryUpdate) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Slug != nil {
		category.Slug = *update.Slug
	}
	if update.Image != nil {
		category.Image = *update.Image
	}
	return category, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := m.categories[id]
	return ok, nil
}

type mockSubCategoryRepository struct {
	subCategories map[primitive.ObjectID]*domain.SubCategory
}

func newMockSubCategoryRepository() *mockSubCategoryRepository {
	return &mockSubCategoryRepository{subCategories: make(map[primitive.ObjectID]*domain.SubCategory)}
}

func (m *mockSubCategoryRepository) add(name string, categoryID primitive.ObjectID) primitive.ObjectID {
	id := primitive.NewObjectID()
	m.subCategories[id] = &domain.SubCategory{ID: id, Name: name, Category: categoryID}
	return id
}

func (m *mockSubCategoryRepository) Create(ctx context.Context, subCategory *domain.SubCategory) error {
	subCategory.ID = primitive.NewObjectID()
	m.subCategories[subCategory.ID] = subCategory
	return nil
}

func (m *mockSubCategoryRepository) List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.PopulatedSubCategory, int, error) {
	return []*domain.PopulatedSubCategory{}, 0, nil
}

func (m *mockSubCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedSubCategory, error) {
	sc, ok := m.subCategories[id]
	if !ok {
		return nil, repository.ErrSubCategoryNotFound
	}
	return &domain.PopulatedSubCategory{
		ID:       sc.ID,
		Name:     sc.Name,
		Slug:     sc.Slug,
		Category: &domain.CategoryRef{ID: sc.Category},
	}, nil
}

func (m *mockSubCategoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.SubCategory, error) {
	found := []*domain.SubCategory{}
	for _, id := range ids {
		if sc, ok := m.subCategories[id]; ok {
			found = append(found, sc)
		}
	}
	return found, nil
}

func (m *mockSubCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.SubCategoryUpdate) (*domain.SubCategory, error) {
	sc, ok := m.subCategories[id]
	if !ok {
		return nil, repository.ErrSubCategoryNotFound
	}
	if update.Name != nil {
		sc.Name = *update.Name
	}
	if update.Slug != nil {
		sc.Slug = *update.Slug
	}
	if update.Category != nil {
		sc.Category = *update.Category
	}
	return sc, nil
}

func (m *mockSubCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.subCategories[id]; !ok {
		return repository.ErrSubCategoryNotFound
	}
	delete(m.subCategories, id)
	return nil
}

type mockProductRepository struct {
	products map[primitive.ObjectID]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[primitive.ObjectID]*domain.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = primitive.NewObjectID()
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *mockProductRepository) List(ctx context.Context, filter query.Filter, skip, limit int) ([]*domain.PopulatedProduct, int, error) {
	products := []*domain.PopulatedProduct{}
	for _, p := range m.products {
		products = append(products, populate(p))
	}
	return products, len(products), nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) FindByIDPopulated(ctx context.Context, id primitive.ObjectID) (*domain.PopulatedProduct, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return populate(product), nil
}

func (m *mockProductRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) error {
	product, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if update.Title != nil {
		product.Title = *update.Title
	}
	if update.Slug != nil {
		product.Slug = *update.Slug
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Subcategories != nil {
		product.Subcategories = update.Subcategories
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func populate(p *domain.Product) *domain.PopulatedProduct {
	populated := &domain.PopulatedProduct{
		ID:       p.ID,
		Title:    p.Title,
		Slug:     p.Slug,
		Category: &domain.CategoryRef{ID: p.Category},
	}
	for _, id := range p.Subcategories {
		populated.Subcategories = append(populated.Subcategories, domain.SubCategoryRef{ID: id})
	}
	return populated
}

func newTestProductService() (ProductService, *mockProductRepository, *mockCategoryRepository, *mockSubCategoryRepository) {
	productRepo := newMockProductRepository()
	categoryRepo := newMockCategoryRepository()
	subCategoryRepo := newMockSubCategoryRepository()
	return NewProductService(productRepo, categoryRepo, subCategoryRepo), productRepo, categoryRepo, subCategoryRepo
}

func TestValidateSubcategoriesSucceedsWhenAllBelong(t *testing.T) {
	svc, _, categoryRepo, subCategoryRepo := newTestProductService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")
	sub1 := subCategoryRepo.add("Laptops", categoryID)
	sub2 := subCategoryRepo.add("Phones", categoryID)

	if err := svc.ValidateSubcategories(ctx, categoryID, []primitive.ObjectID{sub1, sub2}); err != nil {
		t.Errorf("Expected success, got %v", err)
	}
}

func TestValidateSubcategoriesNamesMismatchedIDs(t *testing.T) {
	svc, _, categoryRepo, subCategoryRepo := newTestProductService()
	ctx := context.Background()

	electronics := categoryRepo.add("Electronics")
	books := categoryRepo.add("Books")
	laptops := subCategoryRepo.add("Laptops", electronics)
	novels := subCategoryRepo.add("Novels", books)

	err := svc.ValidateSubcategories(ctx, electronics, []primitive.ObjectID{laptops, novels})

	var mismatch *SubcategoryMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected SubcategoryMismatchError, got %v", err)
	}
	if len(mismatch.IDs) != 1 || mismatch.IDs[0] != novels {
		t.Errorf("Expected exactly the offending id %s, got %v", novels.Hex(), mismatch.IDs)
	}
}

func TestValidateSubcategoriesNamesMissingIDs(t *testing.T) {
	svc, _, categoryRepo, subCategoryRepo := newTestProductService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")
	laptops := subCategoryRepo.add("Laptops", categoryID)
	ghost := primitive.NewObjectID()

	err := svc.ValidateSubcategories(ctx, categoryID, []primitive.ObjectID{laptops, ghost})

	var notFound *SubcategoriesNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected SubcategoriesNotFoundError, got %v", err)
	}
	if len(notFound.IDs) != 1 || notFound.IDs[0] != ghost {
		t.Errorf("Expected exactly the missing id %s, got %v", ghost.Hex(), notFound.IDs)
	}
}

func TestValidateSubcategoriesReportsMissingBeforeMismatch(t *testing.T) {
	svc, _, categoryRepo, subCategoryRepo := newTestProductService()
	ctx := context.Background()

	electronics := categoryRepo.add("Electronics")
	books := categoryRepo.add("Books")
	novels := subCategoryRepo.add("Novels", books)
	ghost := primitive.NewObjectID()

	// Both failures are present; the missing id must win.
	err := svc.ValidateSubcategories(ctx, electronics, []primitive.ObjectID{novels, ghost})

	var notFound *SubcategoriesNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected SubcategoriesNotFoundError first, got %v", err)
	}
}

func TestValidateSubcategoriesDeduplicatesInput(t *testing.T) {
	svc, _, categoryRepo, subCategoryRepo := newTestProductService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")
	laptops := subCategoryRepo.add("Laptops", categoryID)

	err := svc.ValidateSubcategories(ctx, categoryID, []primitive.ObjectID{laptops, laptops, laptops})
	if err != nil {
		t.Errorf("Duplicated ids must not be treated as missing, got %v", err)
	}
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc, _, categoryRepo, _ := newTestProductService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")

	created, err := svc.Create(ctx, domain.Product{
		Title:    "Wireless Mouse XL",
		Category: categoryID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Slug != "wireless-mouse-xl" {
		t.Errorf("Expected slug wireless-mouse-xl, got %s", created.Slug)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc, _, _, _ := newTestProductService()
	ctx := context.Background()

	ghost := primitive.NewObjectID()
	_, err := svc.Create(ctx, domain.Product{Title: "Anything At All", Category: ghost})

	var notFound *CategoryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected CategoryNotFoundError, got %v", err)
	}
	if notFound.ID != ghost {
		t.Errorf("Expected error to name %s, got %s", ghost.Hex(), notFound.ID.Hex())
	}
}

func TestUpdateRecomputesSlugOnTitleChange(t *testing.T) {
	svc, _, categoryRepo, _ := newTestProductService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")
	created, err := svc.Create(ctx, domain.Product{Title: "Wireless Mouse XL", Category: categoryID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Wireless Mouse XL v2"
	updated, err := svc.Update(ctx, created.ID, domain.ProductUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Slug != "wireless-mouse-xl-v2" {
		t.Errorf("Expected slug wireless-mouse-xl-v2, got %s", updated.Slug)
	}
}

func TestUpdateUsesStoredCategoryWhenRequestOmitsIt(t *testing.T) {
	svc, _, categoryRepo, subCategoryRepo := newTestProductService()
	ctx := context.Background()

	electronics := categoryRepo.add("Electronics")
	laptops := subCategoryRepo.add("Laptops", electronics)

	created, err := svc.Create(ctx, domain.Product{
		Title:         "Gaming Laptop Pro",
		Category:      electronics,
		Subcategories: []primitive.ObjectID{laptops},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Same subcategories, no category in the request: validates against the
	// stored category and passes.
	if _, err := svc.Update(ctx, created.ID, domain.ProductUpdate{
		Subcategories: []primitive.ObjectID{laptops},
	}); err != nil {
		t.Errorf("Expected update against stored category to pass, got %v", err)
	}
}

func TestUpdateCategoryChangeRevalidatesSubcategories(t *testing.T) {
	svc, _, categoryRepo, subCategoryRepo := newTestProductService()
	ctx := context.Background()

	electronics := categoryRepo.add("Electronics")
	books := categoryRepo.add("Books")
	laptops := subCategoryRepo.add("Laptops", electronics)

	created, err := svc.Create(ctx, domain.Product{
		Title:         "Gaming Laptop Pro",
		Category:      electronics,
		Subcategories: []primitive.ObjectID{laptops},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Moving to Books while keeping the Laptops subcategory must fail and
	// name the subcategory.
	_, err = svc.Update(ctx, created.ID, domain.ProductUpdate{
		Category:      &books,
		Subcategories: []primitive.ObjectID{laptops},
	})

	var mismatch *SubcategoryMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected SubcategoryMismatchError, got %v", err)
	}
	if len(mismatch.IDs) != 1 || mismatch.IDs[0] != laptops {
		t.Errorf("Expected exactly %s named, got %v", laptops.Hex(), mismatch.IDs)
	}
}

func TestUpdateUnknownProductFails(t *testing.T) {
	svc, _, _, _ := newTestProductService()
	ctx := context.Background()

	title := "Whatever Title Here"
	_, err := svc.Update(ctx, primitive.NewObjectID(), domain.ProductUpdate{Title: &title})
	if !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestListReturnsPaginationDescriptor(t *testing.T) {
	svc, _, categoryRepo, _ := newTestProductService()
	ctx := context.Background()

	categoryID := categoryRepo.add("Electronics")
	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, domain.Product{Title: "Some Product Title", Category: categoryID}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	_, p, err := svc.List(ctx, query.Filter{}, 1, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := pagination.Pagination{TotalCount: 3, CurrentPage: 1, LastPage: 2, PerPage: 2}
	if p != want {
		t.Errorf("Pagination = %+v, want %+v", p, want)
	}
}

func TestProperty_MembershipCheckAcceptsOwnSubcategories(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("any subset of a category's subcategories validates", prop.ForAll(
		func(count int, picks []int) bool {
			svc, _, categoryRepo, subCategoryRepo := newTestProductService()
			ctx := context.Background()

			categoryID := categoryRepo.add("Electronics")
			ids := make([]primitive.ObjectID, count)
			for i := range ids {
				ids[i] = subCategoryRepo.add("Sub", categoryID)
			}

			selected := []primitive.ObjectID{}
			for _, pick := range picks {
				if count > 0 {
					selected = append(selected, ids[pick%count])
				}
			}

			return svc.ValidateSubcategories(ctx, categoryID, selected) == nil
		},
		gen.IntRange(1, 10),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
