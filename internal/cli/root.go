// Package cli implements the command-line interface for gitlab-repo.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var rootCmd = &cobra.Command{
	Use:   "gitlab-repo",
	Short: "Work with GitLab repository branches, tags, trees, and archives",
	Long: `gitlab-repo is a typed client for the GitLab repository API.

It lists and manages branches and tags, walks directory trees, prints raw
file and blob contents, and downloads full repository archives. Connection
details come from a YAML config file and the token from the environment.`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

//nolint:gochecknoinits // Cobra commands require init() for flag registration
func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigFile, "config", "c", "gitlab.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.JSONOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.DebugAPI, "debug-api", false, "Log API request details")
	rootCmd.PersistentFlags().IntVarP(&globalFlags.ProjectID, "project", "p", 0, "Project ID")

	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(blobCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with a background context
func Execute() error {
	return ExecuteWithContext(context.Background())
}

// ExecuteWithContext runs the CLI, canceling on interrupt signals
func ExecuteWithContext(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		output.Warn("Interrupt received, canceling...")
		cancel()
	}()

	return rootCmd.ExecuteContext(ctx)
}
