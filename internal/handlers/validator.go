package handlers

import (
	"github.com/labstack/echo/v4"

	"findash/internal/validation"
)

// CustomValidator implements echo.Validator interface over the shared
// validation package with its custom rules
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}
