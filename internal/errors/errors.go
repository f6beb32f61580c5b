// Package errors defines common error types and utilities used throughout the application
package errors

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrMissingToken   = errors.New("no API token configured")
	ErrMissingBaseURL = errors.New("no base URL configured")

	// Test errors (only used in tests)
	ErrTest = errors.New("test error")
)

// Error templates for static error definitions (satisfies err113 linter)
var (
	errRequiredFieldTemplate = errors.New("field is required")
	errEmptyFieldTemplate    = errors.New("field cannot be empty")
	errInvalidFieldTemplate  = errors.New("invalid field")
	errInvalidFormatTemplate = errors.New("invalid format")
)

// WrapWithContext wraps an error with operation context using consistent formatting.
// This replaces manual fmt.Errorf("failed to %s: %w", operation, err) patterns.
func WrapWithContext(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// RequiredFieldError creates a standardized required field error.
// Used by the form encoder when a required parameter has no value.
func RequiredFieldError(field string) error {
	return fmt.Errorf("%w: %s", errRequiredFieldTemplate, field)
}

// IsRequiredFieldError reports whether err is a missing required field/parameter error
func IsRequiredFieldError(err error) bool {
	return errors.Is(err, errRequiredFieldTemplate)
}

// EmptyFieldError creates a standardized empty field validation error
func EmptyFieldError(field string) error {
	return fmt.Errorf("%w: %s", errEmptyFieldTemplate, field)
}

// InvalidFieldError creates a standardized invalid field error
func InvalidFieldError(field, value string) error {
	return fmt.Errorf("%w: %s: %s", errInvalidFieldTemplate, field, value)
}

// FormatError creates a standardized format validation error
func FormatError(field, value, expectedFormat string) error {
	return fmt.Errorf("%w: %s '%s': expected %s", errInvalidFormatTemplate, field, value, expectedFormat)
}
