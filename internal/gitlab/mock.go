package gitlab

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/mrz1836/go-gitlab-repo/internal/testutil"
)

// MockDispatcher is a mock implementation of the Dispatcher interface
type MockDispatcher struct {
	mock.Mock
}

// NewMockDispatcher creates a new MockDispatcher
func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{}
}

// Get mock implementation
func (m *MockDispatcher) Get(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	args := m.Called(ctx, expectStatus, form, segments)
	return testutil.HandleTwoValueReturn[*Response](args)
}

// Post mock implementation
func (m *MockDispatcher) Post(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	args := m.Called(ctx, expectStatus, form, segments)
	return testutil.HandleTwoValueReturn[*Response](args)
}

// Put mock implementation
func (m *MockDispatcher) Put(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	args := m.Called(ctx, expectStatus, form, segments)
	return testutil.HandleTwoValueReturn[*Response](args)
}

// Delete mock implementation
func (m *MockDispatcher) Delete(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	args := m.Called(ctx, expectStatus, form, segments)
	return testutil.HandleTwoValueReturn[*Response](args)
}

// MockClient is a mock implementation of the Client interface
type MockClient struct {
	mock.Mock
}

// NewMockClient creates a new MockClient
func NewMockClient() *MockClient {
	return &MockClient{}
}

// ListBranches mock implementation
func (m *MockClient) ListBranches(ctx context.Context, projectID int) ([]Branch, error) {
	args := m.Called(ctx, projectID)
	return testutil.HandleTwoValueReturn[[]Branch](args)
}

// GetBranch mock implementation
func (m *MockClient) GetBranch(ctx context.Context, projectID int, branchName string) (*Branch, error) {
	args := m.Called(ctx, projectID, branchName)
	return testutil.HandleTwoValueReturn[*Branch](args)
}

// CreateBranch mock implementation
func (m *MockClient) CreateBranch(ctx context.Context, projectID int, branchName, ref string) (*Branch, error) {
	args := m.Called(ctx, projectID, branchName, ref)
	return testutil.HandleTwoValueReturn[*Branch](args)
}

// DeleteBranch mock implementation
func (m *MockClient) DeleteBranch(ctx context.Context, projectID int, branchName string) error {
	args := m.Called(ctx, projectID, branchName)
	return args.Error(0)
}

// ProtectBranch mock implementation
func (m *MockClient) ProtectBranch(ctx context.Context, projectID int, branchName string) (*Branch, error) {
	args := m.Called(ctx, projectID, branchName)
	return testutil.HandleTwoValueReturn[*Branch](args)
}

// UnprotectBranch mock implementation
func (m *MockClient) UnprotectBranch(ctx context.Context, projectID int, branchName string) (*Branch, error) {
	args := m.Called(ctx, projectID, branchName)
	return testutil.HandleTwoValueReturn[*Branch](args)
}

// ListTags mock implementation
func (m *MockClient) ListTags(ctx context.Context, projectID int) ([]Tag, error) {
	args := m.Called(ctx, projectID)
	return testutil.HandleTwoValueReturn[[]Tag](args)
}

// CreateTag mock implementation
func (m *MockClient) CreateTag(ctx context.Context, projectID int, tagName, ref, message, releaseNotes string) (*Tag, error) {
	args := m.Called(ctx, projectID, tagName, ref, message, releaseNotes)
	return testutil.HandleTwoValueReturn[*Tag](args)
}

// CreateTagFromFile mock implementation
func (m *MockClient) CreateTagFromFile(ctx context.Context, projectID int, tagName, ref, message, releaseNotesFile string) (*Tag, error) {
	args := m.Called(ctx, projectID, tagName, ref, message, releaseNotesFile)
	return testutil.HandleTwoValueReturn[*Tag](args)
}

// DeleteTag mock implementation
func (m *MockClient) DeleteTag(ctx context.Context, projectID int, tagName string) error {
	args := m.Called(ctx, projectID, tagName)
	return args.Error(0)
}

// ListTree mock implementation
func (m *MockClient) ListTree(ctx context.Context, projectID int) ([]TreeItem, error) {
	args := m.Called(ctx, projectID)
	return testutil.HandleTwoValueReturn[[]TreeItem](args)
}

// ListTreeAt mock implementation
func (m *MockClient) ListTreeAt(ctx context.Context, projectID int, path, ref string) ([]TreeItem, error) {
	args := m.Called(ctx, projectID, path, ref)
	return testutil.HandleTwoValueReturn[[]TreeItem](args)
}

// ListTreeRecursive mock implementation
func (m *MockClient) ListTreeRecursive(ctx context.Context, projectID int, path, ref string, recursive bool) ([]TreeItem, error) {
	args := m.Called(ctx, projectID, path, ref, recursive)
	return testutil.HandleTwoValueReturn[[]TreeItem](args)
}

// RawFileContent mock implementation
func (m *MockClient) RawFileContent(ctx context.Context, projectID int, ref, filePath string) (string, error) {
	args := m.Called(ctx, projectID, ref, filePath)
	return testutil.ExtractStringResult(args)
}

// RawBlobContent mock implementation
func (m *MockClient) RawBlobContent(ctx context.Context, projectID int, sha string) (string, error) {
	args := m.Called(ctx, projectID, sha)
	return testutil.ExtractStringResult(args)
}

// GetRepositoryArchive mock implementation
func (m *MockClient) GetRepositoryArchive(ctx context.Context, projectID int, sha string) (io.ReadCloser, error) {
	args := m.Called(ctx, projectID, sha)
	return testutil.HandleTwoValueReturn[io.ReadCloser](args)
}

// DownloadRepositoryArchive mock implementation
func (m *MockClient) DownloadRepositoryArchive(ctx context.Context, projectID int, sha, directory string) (string, error) {
	args := m.Called(ctx, projectID, sha, directory)
	return testutil.ExtractStringResult(args)
}
