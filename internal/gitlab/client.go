package gitlab

import (
	"context"
	"io"
)

// Default tree-listing arguments applied by the no-argument call shape
const (
	// DefaultTreePath is the repository root
	DefaultTreePath = "/"

	// DefaultTreeRef is the ref used when none is given
	DefaultTreeRef = "master"
)

// Client defines the repository API operations.
//
// Each call is one synchronous request/decode sequence with no shared
// mutable state, so a Client is safe for concurrent use. Errors from the
// dispatcher are propagated with operation context added; nothing is
// retried or suppressed here.
type Client interface {
	// ListBranches returns a project's branches, in the server's
	// alphabetical-by-name order
	ListBranches(ctx context.Context, projectID int) ([]Branch, error)

	// GetBranch returns a single branch by name
	GetBranch(ctx context.Context, projectID int, branchName string) (*Branch, error)

	// CreateBranch creates a branch from ref, which may be an existing
	// branch, tag, or commit SHA
	CreateBranch(ctx context.Context, projectID int, branchName, ref string) (*Branch, error)

	// DeleteBranch deletes a branch. The service treats deleting an
	// already-deleted branch as success, so the call is idempotent by
	// the remote contract.
	DeleteBranch(ctx context.Context, projectID int, branchName string) error

	// ProtectBranch protects a branch and returns its updated state.
	// Protecting an already-protected branch succeeds (remote contract).
	ProtectBranch(ctx context.Context, projectID int, branchName string) (*Branch, error)

	// UnprotectBranch removes protection from a branch and returns its
	// updated state. Idempotent by the remote contract.
	UnprotectBranch(ctx context.Context, projectID int, branchName string) (*Branch, error)

	// ListTags returns a project's tags, in the server's
	// reverse-alphabetical-by-name order
	ListTags(ctx context.Context, projectID int) ([]Tag, error)

	// CreateTag creates a tag on ref. Message and release notes are
	// optional and omitted from the request when empty.
	CreateTag(ctx context.Context, projectID int, tagName, ref, message, releaseNotes string) (*Tag, error)

	// CreateTagFromFile is CreateTag with the release notes read from a
	// file. The file is read fully before any request is sent; a read
	// failure aborts the call.
	CreateTagFromFile(ctx context.Context, projectID int, tagName, ref, message, releaseNotesFile string) (*Tag, error)

	// DeleteTag deletes a tag by name. Idempotent by the remote contract.
	DeleteTag(ctx context.Context, projectID int, tagName string) error

	// ListTree lists the repository root at the default ref
	ListTree(ctx context.Context, projectID int) ([]TreeItem, error)

	// ListTreeAt lists path at ref
	ListTreeAt(ctx context.Context, projectID int, path, ref string) ([]TreeItem, error)

	// ListTreeRecursive is the canonical tree listing; the other two
	// shapes delegate here with defaults applied
	ListTreeRecursive(ctx context.Context, projectID int, path, ref string, recursive bool) ([]TreeItem, error)

	// RawFileContent returns the contents of the file at filePath as of
	// ref (branch name or commit SHA)
	RawFileContent(ctx context.Context, projectID int, ref, filePath string) (string, error)

	// RawBlobContent returns the contents of a blob by SHA. This is a
	// distinct endpoint from RawFileContent and the two are not
	// interchangeable.
	RawBlobContent(ctx context.Context, projectID int, sha string) (string, error)

	// GetRepositoryArchive returns an archive of the repository at sha
	// (empty for the default branch) as a byte stream. The caller owns
	// the stream and must close it.
	GetRepositoryArchive(ctx context.Context, projectID int, sha string) (io.ReadCloser, error)

	// DownloadRepositoryArchive saves the archive into directory using
	// the server-suggested filename and returns the file path. An empty
	// directory selects the configured download directory, falling back
	// to the system temp directory. An existing file with the same name
	// is replaced.
	DownloadRepositoryArchive(ctx context.Context, projectID int, sha, directory string) (string, error)
}
