package handlers

import (
	"errors"
	"strings"

	"investment-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if msgs := cv.validator.Struct(i); len(msgs) > 0 {
		return &ValidationError{Details: msgs}
	}
	return nil
}

// ValidationError carries one message per failed field
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// validationDetails returns the per-field messages of a Validate error
func validationDetails(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Details
	}
	return []string{err.Error()}
}
