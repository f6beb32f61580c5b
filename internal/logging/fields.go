// Package logging provides logging configuration types and utilities.
package logging

// StandardFields defines the standardized field names for structured logging
// across all components to ensure consistency and enable better log analysis.
//
//nolint:gochecknoglobals // Intentional global constants for standardized field names
var StandardFields = struct {
	// Operation Context
	Component string
	Operation string

	// Resource Identifiers
	ProjectID  string
	BranchName string
	TagName    string
	Ref        string
	FilePath   string

	// Timing and Performance
	DurationMs string

	// Error Information
	Error  string
	Status string
}{
	Component: "component",
	Operation: "operation",

	ProjectID:  "project_id",
	BranchName: "branch_name",
	TagName:    "tag_name",
	Ref:        "ref",
	FilePath:   "file_path",

	DurationMs: "duration_ms",

	Error:  "error",
	Status: "status",
}
