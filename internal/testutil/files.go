// Package testutil provides shared testing utilities for file creation and mock handling.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTestFile creates a file with the given content under dir and
// returns its path
func WriteTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to create test file %s: %v", path, err)
	}
	return path
}

// ReadTestFile reads a file created during a test, failing the test on error
func ReadTestFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path) //nolint:gosec // test-owned path
	if err != nil {
		t.Fatalf("failed to read test file %s: %v", path, err)
	}
	return string(content)
}
