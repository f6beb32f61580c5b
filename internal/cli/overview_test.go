package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/go-gitlab-repo/internal/gitlab"
)

func TestRunOverview(t *testing.T) {
	setFlags(t, 42)
	buf := captureOutput(t)
	client := withMockClient(t)

	client.On("ListBranches", mock.Anything, 42).Return([]gitlab.Branch{
		{Name: "master", Protected: true},
		{Name: "develop"},
	}, nil)
	client.On("ListTags", mock.Anything, 42).Return([]gitlab.Tag{
		{Name: "v1.2.0"},
		{Name: "v1.10.0"},
		{Name: "nightly"},
	}, nil)

	require.NoError(t, runOverview(testCmd(t), nil))

	out := buf.String()
	assert.Contains(t, out, "Branches:  2 (1 protected)")
	assert.Contains(t, out, "Tags:      3")
	assert.Contains(t, out, "v1.10.0")

	client.AssertExpectations(t)
}

func TestRunOverviewLatestOnly(t *testing.T) {
	setFlags(t, 42)
	buf := captureOutput(t)
	client := withMockClient(t)

	overviewLatestOnly = true
	t.Cleanup(func() { overviewLatestOnly = false })

	client.On("ListBranches", mock.Anything, 42).Return([]gitlab.Branch{}, nil)
	client.On("ListTags", mock.Anything, 42).Return([]gitlab.Tag{{Name: "v0.3.1"}}, nil)

	require.NoError(t, runOverview(testCmd(t), nil))
	assert.Equal(t, "v0.3.1\n", buf.String())
}

func TestRunOverviewLatestOnlyNoSemverTags(t *testing.T) {
	setFlags(t, 42)
	captureOutput(t)
	client := withMockClient(t)

	overviewLatestOnly = true
	t.Cleanup(func() { overviewLatestOnly = false })

	client.On("ListBranches", mock.Anything, 42).Return([]gitlab.Branch{}, nil)
	client.On("ListTags", mock.Anything, 42).Return([]gitlab.Tag{{Name: "nightly"}}, nil)

	err := runOverview(testCmd(t), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no semantic-version tags")
}

func TestRunOverviewListFailure(t *testing.T) {
	setFlags(t, 42)
	captureOutput(t)
	client := withMockClient(t)

	client.On("ListBranches", mock.Anything, 42).Return(nil, assert.AnError)
	client.On("ListTags", mock.Anything, 42).Return([]gitlab.Tag{}, nil).Maybe()

	err := runOverview(testCmd(t), nil)
	require.ErrorIs(t, err, assert.AnError)
}

func TestLatestSemverTag(t *testing.T) {
	tags := []gitlab.Tag{
		{Name: "v1.2.0"},
		{Name: "v1.10.0"},
		{Name: "v1.9.0"},
		{Name: "release-candidate"},
	}

	// Numeric comparison, not lexicographic
	assert.Equal(t, "v1.10.0", latestSemverTag(tags))
	assert.Empty(t, latestSemverTag([]gitlab.Tag{{Name: "nightly"}}))
	assert.Empty(t, latestSemverTag(nil))
}
