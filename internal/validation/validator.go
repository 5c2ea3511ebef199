package validation

import (
	"reflect"
	"strings"

	"findash/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("savings_rule_type", validateSavingsRuleType)
	_ = v.RegisterValidation("tracking_preference", validateTrackingPreference)
	_ = v.RegisterValidation("granularity", validateGranularity)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSavingsRuleType validates that a rule type is one of the
// closed set: round-up, percentage, fixed
func validateSavingsRuleType(fl validator.FieldLevel) bool {
	return models.IsValidRuleType(models.RuleType(fl.Field().String()))
}

// validateTrackingPreference validates the savings tracking preference
func validateTrackingPreference(fl validator.FieldLevel) bool {
	return models.IsValidTrackingPreference(models.TrackingPreference(fl.Field().String()))
}

// validateGranularity validates an explicitly supplied granularity.
// Query parameters go through models.ParseGranularity instead, which
// falls back to monthly rather than rejecting.
func validateGranularity(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	for _, g := range models.AllGranularities() {
		if raw == string(g) {
			return true
		}
	}
	return false
}

// FormatValidationErrors converts validator errors into human-readable
// per-field messages for the API error envelope
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, formatFieldError(fieldErr))
	}
	return details
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	case "oneof":
		return field + " must be one of: " + fieldErr.Param()
	case "savings_rule_type":
		return field + " must be one of: round-up, percentage, fixed"
	case "tracking_preference":
		return field + " must be one of: expense, separate"
	case "granularity":
		return field + " must be one of: daily, weekly, monthly"
	default:
		return field + " is invalid"
	}
}
