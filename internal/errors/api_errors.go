// Package errors - API operation error utilities
package errors

import (
	"errors"
	"fmt"
)

// Error templates for API operations
var (
	errGitLabAPITemplate      = errors.New("GitLab API operation failed")
	errAPIResponseTemplate    = errors.New("API response error")
	errAuthenticationTemplate = errors.New("authentication failed")
)

// GitLabAPIError creates a standardized GitLab API error.
// This consolidates patterns like fmt.Errorf("GitLab API %s failed: %w", operation, err).
//
// Example usage:
//
//	return GitLabAPIError("create tag", "project 42", err)
//	// Returns: "GitLab API operation failed: create tag 'project 42': <original error>"
func GitLabAPIError(operation, context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s '%s': %w", errGitLabAPITemplate, operation, context, err)
}

// APIResponseError creates a standardized API response error.
// This is for unexpected API responses or status codes.
//
// Example usage:
//
//	return APIResponseError(404, "project not found")
//	// Returns: "API response error: status 404: project not found"
func APIResponseError(statusCode int, message string) error {
	return fmt.Errorf("%w: status %d: %s", errAPIResponseTemplate, statusCode, message)
}

// IsAPIResponseError reports whether err came from an unexpected API status
func IsAPIResponseError(err error) bool {
	return errors.Is(err, errAPIResponseTemplate)
}

// AuthenticationError creates a standardized authentication error
func AuthenticationError(service, reason string) error {
	return fmt.Errorf("%w: %s: %s", errAuthenticationTemplate, service, reason)
}
