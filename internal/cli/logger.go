package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/logging"
)

//nolint:gochecknoglobals // Shared logger configured once per invocation
var logger = logrus.New()

// setupLogging configures the shared logger from the global flags.
// A redaction hook scrubs token material from every entry.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(globalFlags.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	if globalFlags.DebugAPI && level > logrus.DebugLevel {
		logger.SetLevel(logrus.DebugLevel)
	}

	if globalFlags.JSONOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.AddHook(&logging.RedactionHook{})
	return nil
}

// logConfig builds the logging configuration passed to components
func logConfig() *logging.LogConfig {
	return &logging.LogConfig{
		ConfigFile: globalFlags.ConfigFile,
		LogLevel:   globalFlags.LogLevel,
		JSONOutput: globalFlags.JSONOutput,
		Debug: logging.DebugFlags{
			API: globalFlags.DebugAPI,
		},
	}
}
