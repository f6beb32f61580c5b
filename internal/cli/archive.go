package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

//nolint:gochecknoglobals // Cobra flag targets
var (
	archiveSHA    string
	archiveDir    string
	archiveStdout bool
)

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Download an archive of the repository",
	Long: `Download a compressed snapshot of the repository.

By default the archive is saved under the configured download directory
using the filename the server suggests, replacing any previous download
of the same artifact. With --stdout the raw archive bytes stream to
standard output instead.`,
	RunE: runArchive,
}

//nolint:gochecknoinits // Cobra commands require init() for flag registration
func init() {
	archiveCmd.Flags().StringVar(&archiveSHA, "sha", "", "Commit SHA or ref to archive (default branch when omitted)")
	archiveCmd.Flags().StringVarP(&archiveDir, "output-dir", "o", "", "Directory to save the archive in")
	archiveCmd.Flags().BoolVar(&archiveStdout, "stdout", false, "Stream the archive to standard output")
	archiveCmd.MarkFlagsMutuallyExclusive("output-dir", "stdout")
}

func runArchive(cmd *cobra.Command, _ []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	if archiveStdout {
		stream, err := client.GetRepositoryArchive(cmd.Context(), globalFlags.ProjectID, archiveSHA)
		if err != nil {
			return err
		}
		defer func() { _ = stream.Close() }()

		_, err = io.Copy(cmd.OutOrStdout(), stream)
		return err
	}

	progress := output.NewProgress("Downloading archive...")
	progress.Start()

	path, err := client.DownloadRepositoryArchive(cmd.Context(), globalFlags.ProjectID, archiveSHA, archiveDir)
	if err != nil {
		progress.StopWithError("Archive download failed")
		return err
	}

	progress.StopWithSuccess("Saved " + path)
	return nil
}
