package transport

import (
	"net/http"

	"catalog-api/internal/domain"
	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Title              string   `json:"title" validate:"required,min=3,max=100"`
	Description        string   `json:"description" validate:"required,min=20"`
	Quantity           *int     `json:"quantity" validate:"required,gte=0"`
	Sold               *int     `json:"sold" validate:"omitempty,gte=0"`
	Price              float64  `json:"price" validate:"required,lte=200000"`
	PriceAfterDiscount *float64 `json:"priceAfterDiscount" validate:"omitempty,gte=1,ltfield=Price"`
	Colors             []string `json:"colors"`
	ImageCover         string   `json:"imageCover" validate:"required"`
	Images             []string `json:"images" validate:"omitempty,dive,url"`
	Category           string   `json:"category" validate:"required,len=24,hexadecimal"`
	Subcategories      []string `json:"subcategories" validate:"omitempty,dive,len=24,hexadecimal"`
	Brand              *string  `json:"brand" validate:"omitempty,len=24,hexadecimal"`
	RatingsAverage     *float64 `json:"ratingsAverage" validate:"omitempty,gte=1,lte=5"`
	RatingsQuantity    *int     `json:"ratingsQuantity" validate:"omitempty,gte=0"`
}

// UpdateProductRequest represents the partial product update payload
type UpdateProductRequest struct {
	Title              *string  `json:"title" validate:"omitempty,min=3,max=100"`
	Description        *string  `json:"description" validate:"omitempty,min=20"`
	Quantity           *int     `json:"quantity" validate:"omitempty,gte=0"`
	Sold               *int     `json:"sold" validate:"omitempty,gte=0"`
	Price              *float64 `json:"price" validate:"omitempty,lte=200000"`
	PriceAfterDiscount *float64 `json:"priceAfterDiscount" validate:"omitempty,gte=1"`
	Colors             []string `json:"colors"`
	ImageCover         *string  `json:"imageCover" validate:"omitempty"`
	Images             []string `json:"images" validate:"omitempty,dive,url"`
	Category           *string  `json:"category" validate:"omitempty,len=24,hexadecimal"`
	Subcategories      []string `json:"subcategories" validate:"omitempty,dive,len=24,hexadecimal"`
	Brand              *string  `json:"brand" validate:"omitempty,len=24,hexadecimal"`
	RatingsAverage     *float64 `json:"ratingsAverage" validate:"omitempty,gte=1,lte=5"`
	RatingsQuantity    *int     `json:"ratingsQuantity" validate:"omitempty,gte=0"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Tag validation guarantees well-formed hex identifiers
	categoryID, _ := primitive.ObjectIDFromHex(req.Category)
	subcategoryIDs := parseIDs(req.Subcategories)

	product := domain.Product{
		Title:              req.Title,
		Description:        req.Description,
		Quantity:           *req.Quantity,
		Price:              req.Price,
		PriceAfterDiscount: req.PriceAfterDiscount,
		Colors:             req.Colors,
		ImageCover:         req.ImageCover,
		Images:             req.Images,
		Category:           categoryID,
		Subcategories:      subcategoryIDs,
		RatingsAverage:     req.RatingsAverage,
	}
	if req.Sold != nil {
		product.Sold = *req.Sold
	}
	if req.RatingsQuantity != nil {
		product.RatingsQuantity = *req.RatingsQuantity
	}
	if req.Brand != nil {
		brandID, _ := primitive.ObjectIDFromHex(*req.Brand)
		product.Brand = &brandID
	}

	created, err := h.productService.Create(r.Context(), product)
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Product created", zap.String("product_id", created.ID.Hex()))
	middleware.RespondSuccess(w, http.StatusCreated, "Product created successfully", created)
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage, filter := listParams(r)

	products, p, err := h.productService.List(r.Context(), filter, page, perPage)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondPaginated(w, "Products fetched successfully", products, p)
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "Product fetched successfully", product)
}

// Update handles PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// The discount rule is only checkable here when both prices are in the
	// request body.
	if req.Price != nil && req.PriceAfterDiscount != nil && *req.PriceAfterDiscount >= *req.Price {
		middleware.RespondValidationErrors(w, map[string]string{
			"priceAfterDiscount": "Value must be lower than price",
		})
		return
	}

	update := domain.ProductUpdate{
		Title:              req.Title,
		Description:        req.Description,
		Quantity:           req.Quantity,
		Sold:               req.Sold,
		Price:              req.Price,
		PriceAfterDiscount: req.PriceAfterDiscount,
		Colors:             req.Colors,
		ImageCover:         req.ImageCover,
		Images:             req.Images,
		RatingsAverage:     req.RatingsAverage,
		RatingsQuantity:    req.RatingsQuantity,
	}
	if req.Category != nil {
		categoryID, _ := primitive.ObjectIDFromHex(*req.Category)
		update.Category = &categoryID
	}
	if req.Subcategories != nil {
		update.Subcategories = parseIDs(req.Subcategories)
	}
	if req.Brand != nil {
		brandID, _ := primitive.ObjectIDFromHex(*req.Brand)
		update.Brand = &brandID
	}

	product, err := h.productService.Update(r.Context(), id, update)
	if err != nil {
		h.logger.Error("Failed to update product", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "Product updated successfully", product)
}

// Delete handles DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Product deleted", zap.String("product_id", id.Hex()))
	middleware.RespondSuccess(w, http.StatusOK, "Product deleted successfully", nil)
}

// parseIDs converts validated hex identifiers. Never called with malformed
// input: the request tags reject those first.
func parseIDs(raw []string) []primitive.ObjectID {
	if raw == nil {
		return nil
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, _ := primitive.ObjectIDFromHex(s)
		ids = append(ids, id)
	}
	return ids
}
