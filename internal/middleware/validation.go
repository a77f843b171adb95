package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateRequest validates a struct against its validation tags
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// DecodeAndValidate decodes a JSON request body and validates it
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return ValidateRequest(v)
}

// FormatValidationErrors converts validator errors to the field-to-message
// mapping carried in the error envelope. Returns nil for non-validation
// errors.
func FormatValidationErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[fieldName(e)] = getErrorMessage(e)
	}

	return fields
}

// fieldName strips the struct name prefix so errors key on the request field
func fieldName(e validator.FieldError) string {
	parts := strings.SplitN(e.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return e.Field()
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short (minimum " + e.Param() + ")"
	case "max":
		return "Value is too long (maximum " + e.Param() + ")"
	case "gte":
		return "Value must be greater than or equal to " + e.Param()
	case "lte":
		return "Value must be less than or equal to " + e.Param()
	case "gt":
		return "Value must be greater than " + e.Param()
	case "lt":
		return "Value must be less than " + e.Param()
	case "ltfield":
		return "Value must be lower than " + e.Param()
	case "url":
		return "Value must be a valid URL"
	case "len":
		return "Value must be exactly " + e.Param() + " characters"
	case "hexadecimal":
		return "Value must be a hexadecimal identifier"
	default:
		return "Invalid value"
	}
}
