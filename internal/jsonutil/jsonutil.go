// Package jsonutil provides type-safe JSON utilities with standardized error handling.
package jsonutil

import (
	"encoding/json"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
)

// MarshalJSON marshals any type to JSON with standardized error handling.
// It provides a type-safe wrapper around json.Marshal with consistent error messages.
func MarshalJSON[T any](v T) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "marshal to JSON")
	}
	return data, nil
}

// UnmarshalJSON unmarshals JSON data to any type with standardized error handling.
// It provides a type-safe wrapper around json.Unmarshal with consistent error messages.
func UnmarshalJSON[T any](data []byte) (T, error) {
	var result T
	err := json.Unmarshal(data, &result)
	if err != nil {
		return result, appErrors.WrapWithContext(err, "unmarshal JSON")
	}
	return result, nil
}

// PrettyPrint formats JSON for human-readable output with proper indentation.
// It returns a formatted string representation of the provided value.
func PrettyPrint(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", appErrors.WrapWithContext(err, "pretty print JSON")
	}
	return string(data), nil
}
