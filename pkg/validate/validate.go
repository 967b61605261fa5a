// Package validate wraps go-playground/validator struct validation and
// translates tag failures into the application error taxonomy.
package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "beautybar/pkg/errors"
)

func New() *validator.Validate {
	return validator.New()
}

// Struct validates s and returns a VALIDATION_ERROR AppError carrying a
// per-field detail map, or nil when s is valid.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.Internal("Failed to validate request", err)
	}

	details := make(map[string]any, len(validationErrs))
	for _, fe := range validationErrs {
		details[fe.Field()] = message(fe)
	}

	return apperrors.Validation("Request validation failed", details)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
