package gitlab

import (
	"context"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
)

// repositoryClient implements Client on top of a Dispatcher
type repositoryClient struct {
	dispatcher  Dispatcher
	logger      *logrus.Logger
	downloadDir string
}

// NewClient creates a repository API client. downloadDir is where
// DownloadRepositoryArchive saves files when the caller does not name a
// directory; empty means the system temp directory, resolved per call.
func NewClient(dispatcher Dispatcher, logger *logrus.Logger, downloadDir string) Client {
	return &repositoryClient{
		dispatcher:  dispatcher,
		logger:      logger,
		downloadDir: downloadDir,
	}
}

// ListBranches returns a project's branches in server order
func (c *repositoryClient) ListBranches(ctx context.Context, projectID int) ([]Branch, error) {
	resp, err := c.dispatcher.Get(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "branches")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "list branches")
	}
	return decodeList[Branch](resp)
}

// GetBranch returns a single branch by name
func (c *repositoryClient) GetBranch(ctx context.Context, projectID int, branchName string) (*Branch, error) {
	resp, err := c.dispatcher.Get(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "branches", branchName)
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "get branch")
	}
	return decodeEntity[Branch](resp)
}

// CreateBranch creates a branch from an existing branch, tag, or commit SHA
func (c *repositoryClient) CreateBranch(ctx context.Context, projectID int, branchName, ref string) (*Branch, error) {
	form := NewForm().
		WithRequiredParam("branch_name", branchName).
		WithRequiredParam("ref", ref)
	if err := form.Err(); err != nil {
		return nil, err
	}

	resp, err := c.dispatcher.Post(ctx, http.StatusCreated, form, "projects", itoa(projectID), "repository", "branches")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "create branch")
	}
	return decodeEntity[Branch](resp)
}

// DeleteBranch deletes a branch
func (c *repositoryClient) DeleteBranch(ctx context.Context, projectID int, branchName string) error {
	resp, err := c.dispatcher.Delete(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "branches", branchName)
	if err != nil {
		return appErrors.WrapWithContext(err, "delete branch")
	}
	return discard(resp)
}

// ProtectBranch protects a branch and returns its updated state
func (c *repositoryClient) ProtectBranch(ctx context.Context, projectID int, branchName string) (*Branch, error) {
	resp, err := c.dispatcher.Put(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "branches", branchName, "protect")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "protect branch")
	}
	return decodeEntity[Branch](resp)
}

// UnprotectBranch removes protection from a branch
func (c *repositoryClient) UnprotectBranch(ctx context.Context, projectID int, branchName string) (*Branch, error) {
	resp, err := c.dispatcher.Put(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "branches", branchName, "unprotect")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "unprotect branch")
	}
	return decodeEntity[Branch](resp)
}

// ListTags returns a project's tags in server order
func (c *repositoryClient) ListTags(ctx context.Context, projectID int) ([]Tag, error) {
	resp, err := c.dispatcher.Get(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "tags")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "list tags")
	}
	return decodeList[Tag](resp)
}

// CreateTag creates a tag on ref with optional message and release notes
func (c *repositoryClient) CreateTag(ctx context.Context, projectID int, tagName, ref, message, releaseNotes string) (*Tag, error) {
	form := NewForm().
		WithRequiredParam("tag_name", tagName).
		WithRequiredParam("ref", ref).
		WithParam("message", message).
		WithParam("release_description", releaseNotes)
	if err := form.Err(); err != nil {
		return nil, err
	}

	resp, err := c.dispatcher.Post(ctx, http.StatusCreated, form, "projects", itoa(projectID), "repository", "tags")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "create tag")
	}
	return decodeEntity[Tag](resp)
}

// CreateTagFromFile reads the release notes file and delegates to CreateTag
func (c *repositoryClient) CreateTagFromFile(ctx context.Context, projectID int, tagName, ref, message, releaseNotesFile string) (*Tag, error) {
	var releaseNotes string
	if releaseNotesFile != "" {
		contents, err := os.ReadFile(releaseNotesFile) //nolint:gosec // caller-supplied release notes path
		if err != nil {
			return nil, appErrors.FileReadError(releaseNotesFile, err)
		}
		releaseNotes = string(contents)
	}

	return c.CreateTag(ctx, projectID, tagName, ref, message, releaseNotes)
}

// DeleteTag deletes a tag by name
func (c *repositoryClient) DeleteTag(ctx context.Context, projectID int, tagName string) error {
	resp, err := c.dispatcher.Delete(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "tags", tagName)
	if err != nil {
		return appErrors.WrapWithContext(err, "delete tag")
	}
	return discard(resp)
}

// ListTree lists the repository root at the default ref
func (c *repositoryClient) ListTree(ctx context.Context, projectID int) ([]TreeItem, error) {
	return c.ListTreeRecursive(ctx, projectID, DefaultTreePath, DefaultTreeRef, false)
}

// ListTreeAt lists path at ref
func (c *repositoryClient) ListTreeAt(ctx context.Context, projectID int, path, ref string) ([]TreeItem, error) {
	return c.ListTreeRecursive(ctx, projectID, path, ref, false)
}

// ListTreeRecursive is the canonical tree listing
func (c *repositoryClient) ListTreeRecursive(ctx context.Context, projectID int, path, ref string, recursive bool) ([]TreeItem, error) {
	form := NewForm().
		WithRequiredParam("id", projectID).
		WithParam("path", path).
		WithParam("ref_name", ref)
	if recursive {
		form = form.WithParam("recursive", true)
	}
	if err := form.Err(); err != nil {
		return nil, err
	}

	resp, err := c.dispatcher.Get(ctx, http.StatusOK, form, "projects", itoa(projectID), "repository", "tree")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "list tree")
	}
	return decodeList[TreeItem](resp)
}

// RawFileContent returns file contents at ref as opaque text
func (c *repositoryClient) RawFileContent(ctx context.Context, projectID int, ref, filePath string) (string, error) {
	form := NewForm().WithRequiredParam("filepath", filePath)
	if err := form.Err(); err != nil {
		return "", err
	}

	resp, err := c.dispatcher.Get(ctx, http.StatusOK, form, "projects", itoa(projectID), "repository", "blobs", ref)
	if err != nil {
		return "", appErrors.WrapWithContext(err, "get raw file content")
	}
	return readText(resp)
}

// RawBlobContent returns blob contents by SHA as opaque text
func (c *repositoryClient) RawBlobContent(ctx context.Context, projectID int, sha string) (string, error) {
	resp, err := c.dispatcher.Get(ctx, http.StatusOK, nil, "projects", itoa(projectID), "repository", "raw_blobs", sha)
	if err != nil {
		return "", appErrors.WrapWithContext(err, "get raw blob content")
	}
	return readText(resp)
}

// GetRepositoryArchive returns the archive stream; the caller closes it
func (c *repositoryClient) GetRepositoryArchive(ctx context.Context, projectID int, sha string) (io.ReadCloser, error) {
	resp, err := c.archiveResponse(ctx, projectID, sha)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// DownloadRepositoryArchive saves the archive to disk and returns its path
func (c *repositoryClient) DownloadRepositoryArchive(ctx context.Context, projectID int, sha, directory string) (string, error) {
	resp, err := c.archiveResponse(ctx, projectID, sha)
	if err != nil {
		return "", err
	}

	filename, err := filenameFromDisposition(resp)
	if err != nil {
		_ = resp.Body.Close()
		return "", err
	}

	if directory == "" {
		directory = c.downloadDir
	}
	if directory == "" {
		directory = os.TempDir()
	}

	path, err := saveArchive(resp.Body, directory, filename)
	if err != nil {
		return "", err
	}

	if c.logger != nil {
		c.logger.WithField("path", path).Debug("Archive saved")
	}
	return path, nil
}

func (c *repositoryClient) archiveResponse(ctx context.Context, projectID int, sha string) (*Response, error) {
	form := NewForm().WithParam("sha", sha)

	resp, err := c.dispatcher.Get(ctx, http.StatusOK, form, "projects", itoa(projectID), "repository", "archive")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "get repository archive")
	}
	return resp, nil
}

// discard closes a response whose body carries nothing the caller needs
func discard(resp *Response) error {
	_, err := io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return err
}

func itoa(projectID int) string {
	return strconv.Itoa(projectID)
}
