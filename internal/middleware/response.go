package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"catalog-api/internal/pagination"

	"go.uber.org/zap"
)

// Envelope is the uniform response shape. Every route responds through it
// except the process-level fatal path.
type Envelope struct {
	Status     bool                   `json:"status"`
	Message    string                 `json:"message"`
	Data       interface{}            `json:"data,omitempty"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
	Errors     map[string]string      `json:"errors,omitempty"`
}

// RespondSuccess writes a success envelope
func RespondSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// RespondPaginated writes a success envelope with the pagination descriptor
func RespondPaginated(w http.ResponseWriter, message string, data interface{}, p pagination.Pagination) {
	writeJSON(w, http.StatusOK, Envelope{
		Status:     true,
		Message:    message,
		Data:       data,
		Pagination: &p,
	})
}

// RespondError writes a failure envelope
func RespondError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Envelope{
		Status:  false,
		Message: message,
	})
}

// RespondValidationErrors writes a failure envelope carrying the
// field-to-message mapping
func RespondValidationErrors(w http.ResponseWriter, errors map[string]string) {
	writeJSON(w, http.StatusBadRequest, Envelope{
		Status:  false,
		Message: "validation failed",
		Errors:  errors,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// ErrorHandlingMiddleware catches panics and converts them to 500 envelopes.
// Panic detail is only exposed in development.
func ErrorHandlingMiddleware(logger *zap.Logger, isDevelopment bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					message := "internal server error"
					if isDevelopment {
						message = fmt.Sprintf("internal server error: %v", err)
					}
					RespondError(w, http.StatusInternalServerError, message)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
