// Package transport contains the HTTP handlers for the catalog resources.
package transport

import (
	"errors"
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/pagination"
	"catalog-api/internal/query"
	"catalog-api/internal/repository"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// idParam parses the :id path parameter. Any non-conforming identifier is
// rejected with a validation envelope before handler logic runs.
func idParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		middleware.RespondValidationErrors(w, map[string]string{"id": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// listParams extracts the clamped page controls and the store filter from
// the raw query string.
func listParams(r *http.Request) (page, perPage int, filter query.Filter) {
	values := r.URL.Query()
	page = pagination.ParsePage(values.Get("page"))
	perPage = pagination.ParsePerPage(values.Get("per_page"))
	filter = query.Build(values)
	return page, perPage, filter
}

// respondDomainError maps service and repository errors onto the envelope.
// Callers handle anything endpoint-specific before falling through here.
func respondDomainError(w http.ResponseWriter, err error) {
	var categoryNotFound *service.CategoryNotFoundError
	var subcategoriesNotFound *service.SubcategoriesNotFoundError
	var subcategoryMismatch *service.SubcategoryMismatchError

	switch {
	case errors.As(err, &categoryNotFound),
		errors.As(err, &subcategoriesNotFound):
		middleware.RespondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &subcategoryMismatch):
		middleware.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrCategoryNotFound):
		middleware.RespondError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, repository.ErrSubCategoryNotFound):
		middleware.RespondError(w, http.StatusNotFound, "SubCategory not found")
	case errors.Is(err, repository.ErrBrandNotFound):
		middleware.RespondError(w, http.StatusNotFound, "Brand not found")
	case errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, repository.ErrCategoryAlreadyExists),
		errors.Is(err, repository.ErrSubCategoryAlreadyExists),
		errors.Is(err, repository.ErrBrandAlreadyExists):
		middleware.RespondError(w, http.StatusConflict, err.Error())
	default:
		middleware.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody decodes and validates a request DTO, writing the appropriate
// envelope on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		if fields := middleware.FormatValidationErrors(err); fields != nil {
			middleware.RespondValidationErrors(w, fields)
			return false
		}
		middleware.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
