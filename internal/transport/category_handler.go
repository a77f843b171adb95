package transport

import (
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=32"`
	Image string `json:"image" validate:"omitempty,url"`
}

// UpdateCategoryRequest represents the partial category update payload
type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=32"`
	Image *string `json:"image" validate:"omitempty,url"`
}

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), req.Name, req.Image)
	if err != nil {
		h.logger.Error("Failed to create category", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Category created", zap.String("category_id", category.ID.Hex()))
	middleware.RespondSuccess(w, http.StatusCreated, "Category created successfully", category)
}

// List handles GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage, filter := listParams(r)

	categories, p, err := h.categoryService.List(r.Context(), filter, page, perPage)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondPaginated(w, "Categories fetched successfully", categories, p)
}

// Get handles GET /categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "Category fetched successfully", category)
}

// Update handles PUT /categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, req.Name, req.Image)
	if err != nil {
		h.logger.Error("Failed to update category", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	h.logger.Info("Category deleted", zap.String("category_id", id.Hex()))
	middleware.RespondSuccess(w, http.StatusOK, "Category deleted successfully", nil)
}
