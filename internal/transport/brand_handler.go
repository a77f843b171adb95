package transport

import (
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateBrandRequest represents the brand creation payload
type CreateBrandRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=32"`
	Image string `json:"image" validate:"omitempty,url"`
}

// UpdateBrandRequest represents the partial brand update payload
type UpdateBrandRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=32"`
	Image *string `json:"image" validate:"omitempty,url"`
}

// BrandHandler handles HTTP requests for brand operations
type BrandHandler struct {
	brandService service.BrandService
	logger       *zap.Logger
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService service.BrandService, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		logger:       logger,
	}
}

// RegisterRoutes registers all brand routes
func (h *BrandHandler) RegisterRoutes(r chi.Router) {
	r.Route("/brands", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /brands
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
	if !decodeBody(w, r, &req) {
		return
	}

	brand, err := h.brandService.Create(r.Context(), req.Name, req.Image)
	if err != nil {
		h.logger.Error("Failed to create brand", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Brand created", zap.String("brand_id", brand.ID.Hex()))
	middleware.RespondSuccess(w, http.StatusCreated, "Brand created successfully", brand)
}

// List handles GET /brands
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage, filter := listParams(r)

	brands, p, err := h.brandService.List(r.Context(), filter, page, perPage)
	if err != nil {
		h.logger.Error("Failed to list brands", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondPaginated(w, "Brands fetched successfully", brands, p)
}

// Get handles GET /brands/{id}
func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	brand, err := h.brandService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "Brand fetched successfully", brand)
}

// Update handles PUT /brands/{id}
func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateBrandRequest
	if !decodeBody(w, r, &req) {
		return
	}

	brand, err := h.brandService.Update(r.Context(), id, req.Name, req.Image)
	if err != nil {
		h.logger.Error("Failed to update brand", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "Brand updated successfully", brand)
}

// Delete handles DELETE /brands/{id}
func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.brandService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Brand deleted", zap.String("brand_id", id.Hex()))
	middleware.RespondSuccess(w, http.StatusOK, "Brand deleted successfully", nil)
}
