// Package logging provides logging configuration types and utilities.
//
// This package defines the logging configuration structures used throughout
// the application to enable component-specific debug logging and verbose
// output control. It avoids import cycles by being a leaf dependency.
package logging

// LogConfig holds all logging and CLI configuration.
//
// This configuration is passed via dependency injection throughout the
// application to avoid global state and enable better testing isolation.
type LogConfig struct {
	ConfigFile string
	LogLevel   string
	Verbose    int // -v, -vv, -vvv support
	Debug      DebugFlags
	LogFormat  string // "text" or "json"
	JSONOutput bool   // Enable JSON structured output
}

// DebugFlags contains component-specific debug flags for targeted troubleshooting.
//
// Each flag enables detailed logging for a specific component:
// - API: request dispatch, timing, and status codes
// - Archive: archive download and file materialization
// - Config: configuration loading and validation
type DebugFlags struct {
	API     bool // --debug-api flag
	Archive bool // --debug-archive flag
	Config  bool // --debug-config flag
}
