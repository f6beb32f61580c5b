package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

// Build information set via ldflags
//
//nolint:gochecknoglobals // Build variables are set via ldflags during compilation
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(_ *cobra.Command, _ []string) error {
		return printVersion()
	},
}

func printVersion() error {
	info := VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if globalFlags.JSONOutput {
		return printJSON(info)
	}

	output.Info(fmt.Sprintf("gitlab-repo %s", info.Version))
	output.Info(fmt.Sprintf("Commit:     %s", info.Commit))
	output.Info(fmt.Sprintf("Build Date: %s", info.BuildDate))
	output.Info(fmt.Sprintf("Go Version: %s", info.GoVersion))
	output.Info(fmt.Sprintf("Platform:   %s/%s", info.OS, info.Arch))

	return nil
}
