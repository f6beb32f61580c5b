package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-gitlab-repo/internal/gitlab"
	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List and manage repository tags",
}

//nolint:gochecknoglobals // Cobra flag targets
var (
	createTagRef       string
	createTagMessage   string
	createTagNotes     string
	createTagNotesFile string
)

//nolint:gochecknoinits // Cobra commands require init() for registration
func init() {
	listTags := &cobra.Command{
		Use:   "list",
		Short: "List all tags, newest name first per the server ordering",
		RunE:  runListTags,
	}

	createTag := &cobra.Command{
		Use:   "create <tag>",
		Short: "Create a tag on a ref, optionally with a message and release notes",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreateTag,
	}
	createTag.Flags().StringVar(&createTagRef, "ref", "", "Branch, tag, or commit SHA to tag (required)")
	createTag.Flags().StringVar(&createTagMessage, "message", "", "Tag message")
	createTag.Flags().StringVar(&createTagNotes, "notes", "", "Release notes text")
	createTag.Flags().StringVar(&createTagNotesFile, "notes-file", "", "File whose contents become the release notes")
	createTag.MarkFlagsMutuallyExclusive("notes", "notes-file")
	_ = createTag.MarkFlagRequired("ref")

	deleteTag := &cobra.Command{
		Use:   "delete <tag>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeleteTag,
	}

	tagsCmd.AddCommand(listTags, createTag, deleteTag)
}

func runListTags(cmd *cobra.Command, _ []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	tags, err := client.ListTags(cmd.Context(), globalFlags.ProjectID)
	if err != nil {
		return err
	}

	if globalFlags.JSONOutput {
		return printJSON(tags)
	}
	for _, t := range tags {
		output.Plain(formatTag(&t))
	}
	return nil
}

func runCreateTag(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	var tag *gitlab.Tag
	if createTagNotesFile != "" {
		tag, err = client.CreateTagFromFile(cmd.Context(), globalFlags.ProjectID, args[0], createTagRef, createTagMessage, createTagNotesFile)
	} else {
		tag, err = client.CreateTag(cmd.Context(), globalFlags.ProjectID, args[0], createTagRef, createTagMessage, createTagNotes)
	}
	if err != nil {
		return err
	}

	output.Successf("Created tag %s on %s", tag.Name, createTagRef)
	if globalFlags.JSONOutput {
		return printJSON(tag)
	}
	output.Plain(formatTag(tag))
	return nil
}

func runDeleteTag(cmd *cobra.Command, args []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	if err := client.DeleteTag(cmd.Context(), globalFlags.ProjectID, args[0]); err != nil {
		return err
	}
	output.Successf("Deleted tag %s", args[0])
	return nil
}

func formatTag(t *gitlab.Tag) string {
	line := fmt.Sprintf("%-30s %s", t.Name, shortSHA(t.Commit.ID))
	if t.Message != "" {
		line += "  " + t.Message
	}
	return line
}
