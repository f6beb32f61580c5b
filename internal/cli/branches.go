package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/gitlab"
	"github.com/mrz1836/go-gitlab-repo/internal/jsonutil"
	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List and manage repository branches",
}

//nolint:gochecknoglobals // Cobra flag targets
var createBranchRef string

//nolint:gochecknoinits // Cobra commands require init() for registration
func init() {
	listBranches := &cobra.Command{
		Use:   "list",
		Short: "List all branches, sorted by name by the server",
		RunE:  runListBranches,
	}

	getBranch := &cobra.Command{
		Use:   "get <branch>",
		Short: "Show a single branch",
		Args:  cobra.ExactArgs(1),
		RunE:  runGetBranch,
	}

	createBranch := &cobra.Command{
		Use:   "create <branch>",
		Short: "Create a branch from an existing branch, tag, or commit SHA",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreateBranch,
	}
	createBranch.Flags().StringVar(&createBranchRef, "ref", "", "Source branch, tag, or commit SHA (required)")
	_ = createBranch.MarkFlagRequired("ref")

	deleteBranch := &cobra.Command{
		Use:   "delete <branch>",
		Short: "Delete a branch",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeleteBranch,
	}

	protectBranch := &cobra.Command{
		Use:   "protect <branch>",
		Short: "Protect a branch",
		Args:  cobra.ExactArgs(1),
		RunE:  runProtectBranch,
	}

	unprotectBranch := &cobra.Command{
		Use:   "unprotect <branch>",
		Short: "Remove protection from a branch",
		Args:  cobra.ExactArgs(1),
		RunE:  runUnprotectBranch,
	}

	branchesCmd.AddCommand(listBranches, getBranch, createBranch, deleteBranch, protectBranch, unprotectBranch)
}

func runListBranches(cmd *cobra.Command, _ []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	branches, err := client.ListBranches(cmd.Context(), globalFlags.ProjectID)
	if err != nil {
		return err
	}

	if globalFlags.JSONOutput {
		return printJSON(branches)
	}
	for _, b := range branches {
		output.Plain(formatBranch(&b))
	}
	return nil
}

func runGetBranch(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	branch, err := client.GetBranch(cmd.Context(), globalFlags.ProjectID, args[0])
	if err != nil {
		return err
	}
	return printBranch(branch)
}

func runCreateBranch(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	branch, err := client.CreateBranch(cmd.Context(), globalFlags.ProjectID, args[0], createBranchRef)
	if err != nil {
		return err
	}

	output.Successf("Created branch %s", branch.Name)
	return printBranch(branch)
}

func runDeleteBranch(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	if err := client.DeleteBranch(cmd.Context(), globalFlags.ProjectID, args[0]); err != nil {
		return err
	}
	output.Successf("Deleted branch %s", args[0])
	return nil
}

func runProtectBranch(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	branch, err := client.ProtectBranch(cmd.Context(), globalFlags.ProjectID, args[0])
	if err != nil {
		return err
	}

	output.Successf("Protected branch %s", branch.Name)
	return printBranch(branch)
}

func runUnprotectBranch(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	branch, err := client.UnprotectBranch(cmd.Context(), globalFlags.ProjectID, args[0])
	if err != nil {
		return err
	}

	output.Successf("Unprotected branch %s", branch.Name)
	return printBranch(branch)
}

func printBranch(branch *gitlab.Branch) error {
	if globalFlags.JSONOutput {
		return printJSON(branch)
	}
	output.Plain(formatBranch(branch))
	return nil
}

func formatBranch(b *gitlab.Branch) string {
	marker := " "
	if b.Protected {
		marker = "*"
	}
	return fmt.Sprintf("%s %-40s %s", marker, b.Name, shortSHA(b.Commit.ID))
}

func printJSON(v interface{}) error {
	text, err := jsonutil.PrettyPrint(v)
	if err != nil {
		return err
	}
	output.Plain(text)
	return nil
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
