package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/go-gitlab-repo/internal/gitlab"
	"github.com/mrz1836/go-gitlab-repo/internal/output"
)

//nolint:gochecknoglobals // Cobra flag targets
var overviewLatestOnly bool

//nolint:gochecknoglobals // Cobra commands are designed to be global variables
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Summarize a repository's branches and tags",
	RunE:  runOverview,
}

//nolint:gochecknoinits // Cobra commands require init() for flag registration
func init() {
	overviewCmd.Flags().BoolVar(&overviewLatestOnly, "latest", false, "Print only the newest semantic-version tag")
}

// overviewResult is the JSON shape of the overview command
type overviewResult struct {
	Branches        int    `json:"branches"`
	ProtectedCount  int    `json:"protected_branches"`
	Tags            int    `json:"tags"`
	LatestSemverTag string `json:"latest_semver_tag,omitempty"`
}

func runOverview(cmd *cobra.Command, _ []string) error {
	if err := requireProject(globalFlags); err != nil {
		return err
	}

	client, err := clientFactory(globalFlags)
	if err != nil {
		return err
	}

	var (
		branches []gitlab.Branch
		tags     []gitlab.Tag
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var listErr error
		branches, listErr = client.ListBranches(ctx, globalFlags.ProjectID)
		return listErr
	})
	g.Go(func() error {
		var listErr error
		tags, listErr = client.ListTags(ctx, globalFlags.ProjectID)
		return listErr
	})
	if err := g.Wait(); err != nil {
		return err
	}

	latest := latestSemverTag(tags)

	if overviewLatestOnly {
		if latest == "" {
			return fmt.Errorf("no semantic-version tags found in project %d", globalFlags.ProjectID) //nolint:err113 // user-facing CLI message
		}
		output.Plain(latest)
		return nil
	}

	result := overviewResult{
		Branches:        len(branches),
		Tags:            len(tags),
		LatestSemverTag: latest,
	}
	for _, b := range branches {
		if b.Protected {
			result.ProtectedCount++
		}
	}

	if globalFlags.JSONOutput {
		return printJSON(result)
	}

	output.Infof("Branches:  %d (%d protected)", result.Branches, result.ProtectedCount)
	output.Infof("Tags:      %d", result.Tags)
	if latest != "" {
		output.Infof("Latest:    %s", latest)
	}
	return nil
}

// latestSemverTag returns the highest tag name that parses as a semantic
// version, or empty when none do. The tag list itself stays in server
// order; only the comparison uses version semantics.
func latestSemverTag(tags []gitlab.Tag) string {
	var (
		best     *semver.Version
		bestName string
	)
	for _, t := range tags {
		v, err := semver.NewVersion(t.Name)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestName = t.Name
		}
	}
	return bestName
}
