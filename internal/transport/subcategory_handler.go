package transport

import (
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateSubCategoryRequest represents the sub-category creation payload
type CreateSubCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=32"`
	Category string `json:"category" validate:"required,len=24,hexadecimal"`
}

// UpdateSubCategoryRequest represents the partial sub-category update payload
type UpdateSubCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=32"`
	Category *string `json:"category" validate:"omitempty,len=24,hexadecimal"`
}

// SubCategoryHandler handles HTTP requests for sub-category operations
type SubCategoryHandler struct {
	subCategoryService service.SubCategoryService
	logger             *zap.Logger
}

// NewSubCategoryHandler creates a new SubCategoryHandler
func NewSubCategoryHandler(subCategoryService service.SubCategoryService, logger *zap.Logger) *SubCategoryHandler {
	return &SubCategoryHandler{
		subCategoryService: subCategoryService,
		logger:             logger,
	}
}

// RegisterRoutes registers all sub-category routes
func (h *SubCategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/sub-categories", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /sub-categories
func (h *SubCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Tag validation guarantees a well-formed hex identifier
	categoryID, _ := primitive.ObjectIDFromHex(req.Category)

	subCategory, err := h.subCategoryService.Create(r.Context(), req.Name, categoryID)
	if err != nil {
		h.logger.Error("Failed to create sub-category", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	h.logger.Info("SubCategory created", zap.String("subcategory_id", subCategory.ID.Hex()))
	middleware.RespondSuccess(w, http.StatusCreated, "SubCategory created successfully", subCategory)
}

// List handles GET /sub-categories
func (h *SubCategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage, filter := listParams(r)

	subCategories, p, err := h.subCategoryService.List(r.Context(), filter, page, perPage)
	if err != nil {
		h.logger.Error("Failed to list sub-categories", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondPaginated(w, "SubCategories fetched successfully", subCategories, p)
}

// Get handles GET /sub-categories/{id}
func (h *SubCategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	subCategory, err := h.subCategoryService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "SubCategory fetched successfully", subCategory)
}

// Update handles PUT /sub-categories/{id}
func (h *SubCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateSubCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var categoryID *primitive.ObjectID
	if req.Category != nil {
		parsed, _ := primitive.ObjectIDFromHex(*req.Category)
		categoryID = &parsed
	}

	subCategory, err := h.subCategoryService.Update(r.Context(), id, req.Name, categoryID)
	if err != nil {
		h.logger.Error("Failed to update sub-category", zap.Error(err))
		respondDomainError(w, err)
		return
	}

	middleware.RespondSuccess(w, http.StatusOK, "SubCategory updated successfully", subCategory)
}

// Delete handles DELETE /sub-categories/{id}
func (h *SubCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.subCategoryService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	h.logger.Info("SubCategory deleted", zap.String("subcategory_id", id.Hex()))
	middleware.RespondSuccess(w, http.StatusOK, "SubCategory deleted successfully", nil)
}
