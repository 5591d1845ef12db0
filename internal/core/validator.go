package core

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"strollcast/internal/types"
)

// Validator wraps go-playground/validator to translate struct tag violations
// into the service's AppError taxonomy. A single instance is shared by all
// handlers; the underlying validator caches struct metadata and is safe for
// concurrent use.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewValidator creates a new Validator.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		validate: validator.New(),
		logger:   logger,
	}
}

// ValidateStruct validates a request DTO against its struct tags. On
// violation it returns a *types.AppError with a field-specific validation
// code where one exists, falling back to the generic missing-field code.
func (v *Validator) ValidateStruct(dst interface{}) error {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return types.NewAppError(types.ErrCodeInternalUnexpected,
			"request validation failed unexpectedly", err)
	}

	first := verrs[0]
	return types.NewAppErrorWithDetails(
		codeForField(first),
		fmt.Sprintf("field %s failed validation rule %q", first.Field(), first.Tag()),
		err,
		map[string]any{
			"field": first.Field(),
			"rule":  first.Tag(),
		},
	)
}

// codeForField picks the most specific validation error code for a failed
// field. The mapping is by tag and field name, defaulting to the generic
// missing-field code.
func codeForField(fe validator.FieldError) types.ErrorCode {
	switch fe.Tag() {
	case "latitude":
		return types.ErrCodeValidationInvalidLat
	case "longitude":
		return types.ErrCodeValidationInvalidLon
	}
	switch fe.Field() {
	case "Lat":
		return types.ErrCodeValidationInvalidLat
	case "Lon":
		return types.ErrCodeValidationInvalidLon
	case "DurationMinutes":
		return types.ErrCodeValidationInvalidDuration
	case "Date":
		return types.ErrCodeValidationInvalidDate
	case "UnitSystem":
		return types.ErrCodeValidationInvalidUnit
	case "Temperature", "Condition", "Precipitation", "WindSpeed":
		if fe.Tag() != "required" {
			return types.ErrCodeValidationInvalidSnapshot
		}
	}
	return types.ErrCodeValidationMissingField
}
