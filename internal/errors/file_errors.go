// Package errors - file operation error utilities
package errors

import (
	"errors"
	"fmt"
)

// Error templates for file operations
var (
	errFileOperationTemplate      = errors.New("file operation failed")
	errDirectoryOperationTemplate = errors.New("directory operation failed")
)

// FileOperationError creates a standardized file operation error.
// This consolidates patterns like fmt.Errorf("failed to %s file %s: %w", operation, path, err).
//
// Example usage:
//
//	return FileOperationError("read", "/path/to/file.txt", err)
//	// Returns: "file operation failed: read '/path/to/file.txt': <original error>"
func FileOperationError(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s '%s': %w", errFileOperationTemplate, operation, path, err)
}

// IsFileOperationError reports whether err came from a file operation
func IsFileOperationError(err error) bool {
	return errors.Is(err, errFileOperationTemplate)
}

// DirectoryOperationError creates a standardized directory operation error
func DirectoryOperationError(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s '%s': %w", errDirectoryOperationTemplate, operation, path, err)
}

// FileReadError is a convenience function for file read operations
func FileReadError(path string, err error) error {
	return FileOperationError("read", path, err)
}

// FileWriteError is a convenience function for file write operations
func FileWriteError(path string, err error) error {
	return FileOperationError("write", path, err)
}

// FileCreateError is a convenience function for file creation operations
func FileCreateError(path string, err error) error {
	return FileOperationError("create", path, err)
}

// DirectoryCreateError is a convenience function for directory creation
func DirectoryCreateError(path string, err error) error {
	return DirectoryOperationError("create", path, err)
}
