// Package testutil provides shared testing utilities for file creation and mock handling.
package testutil

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// ValidateArgs validates mock arguments count against expected count
func ValidateArgs(args mock.Arguments, expectedCount int) error {
	if len(args) != expectedCount {
		return fmt.Errorf("mock not properly configured: expected %d return values, got %d", expectedCount, len(args)) //nolint:err113 // defensive error for test mock
	}
	return nil
}

// HandleTwoValueReturn handles the common pattern for methods returning (result, error).
// It includes fallback handling for incorrectly configured mocks.
func HandleTwoValueReturn[T any](args mock.Arguments) (T, error) {
	var zero T

	if err := ValidateArgs(args, 2); err != nil {
		return zero, err
	}

	if args.Get(0) == nil {
		return zero, args.Error(1)
	}

	result, ok := args.Get(0).(T)
	if !ok {
		return zero, fmt.Errorf("mock result is not of expected type %T", zero) //nolint:err113 // defensive error for test mock
	}

	return result, args.Error(1)
}

// ExtractStringResult extracts string result from mock arguments for methods returning (string, error).
// This handles the fallback pattern for incorrectly configured mocks.
func ExtractStringResult(args mock.Arguments) (string, error) {
	if len(args) < 2 {
		if len(args) == 1 {
			if err, ok := args.Get(0).(error); ok {
				return "", err
			}
		}
		return "", fmt.Errorf("mock not properly configured: expected 2 return values, got %d", len(args)) //nolint:err113 // defensive error for test mock
	}

	return args.String(0), args.Error(1)
}

// ExtractError extracts error from mock arguments with single return value validation.
// This is used for methods that return only error.
func ExtractError(args mock.Arguments) error {
	if err := ValidateArgs(args, 1); err != nil {
		return err
	}

	if args.Get(0) == nil {
		return nil
	}

	if err, ok := args.Get(0).(error); ok {
		return err
	}

	return fmt.Errorf("mock returned non-error type: %T", args.Get(0)) //nolint:err113 // defensive error for test mock
}
