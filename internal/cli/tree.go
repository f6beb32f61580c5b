package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/gitlab"
	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

//nolint:gochecknoglobals // Cobra flag targets
var (
	treePath      string
	treeRef       string
	treeRecursive bool
)

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "List repository files and directories",
	RunE:  runTree,
}

//nolint:gochecknoinits // Cobra commands require init() for flag registration
func init() {
	treeCmd.Flags().StringVar(&treePath, "path", gitlab.DefaultTreePath, "Path inside the repository")
	treeCmd.Flags().StringVar(&treeRef, "ref", gitlab.DefaultTreeRef, "Branch, tag, or commit to list")
	treeCmd.Flags().BoolVarP(&treeRecursive, "recursive", "r", false, "Descend into subdirectories")
}

func runTree(cmd *cobra.Command, _ []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	items, err := client.ListTreeRecursive(cmd.Context(), globalFlags.ProjectID, treePath, treeRef, treeRecursive)
	if err != nil {
		return err
	}

	if globalFlags.JSONOutput {
		return printJSON(items)
	}
	for _, item := range items {
		output.Plain(fmt.Sprintf("%s %-4s %s", item.Mode, item.Type, item.Path))
	}
	return nil
}
