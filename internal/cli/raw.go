package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

//nolint:gochecknoglobals // Cobra flag targets
var catRef string

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print the raw contents of a file at a ref",
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var blobCmd = &cobra.Command{
	Use:   "blob <sha>",
	Short: "Print the raw contents of a blob by SHA",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlob,
}

//nolint:gochecknoinits // Cobra commands require init() for flag registration
func init() {
	catCmd.Flags().StringVar(&catRef, "ref", "master", "Branch name or commit SHA")
}

func runCat(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	content, err := client.RawFileContent(cmd.Context(), globalFlags.ProjectID, catRef, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(output.Stdout(), content)
	return err
}

func runBlob(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	content, err := client.RawBlobContent(cmd.Context(), globalFlags.ProjectID, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(output.Stdout(), content)
	return err
}
