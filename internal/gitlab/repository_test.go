package gitlab

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
	"github.com/mrz1836/go-gitlab-repo/internal/testutil"
)

func jsonResponse(body string) *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(dispatcher Dispatcher) Client {
	return NewClient(dispatcher, logrus.New(), "")
}

func TestListBranchesKeepsServerOrder(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "42", "repository", "branches"}).
		Return(jsonResponse(`[{"name":"develop"},{"name":"feature/x"},{"name":"master"}]`), nil)

	branches, err := client.ListBranches(ctx, 42)
	require.NoError(t, err)
	require.Len(t, branches, 3)
	assert.Equal(t, "develop", branches[0].Name)
	assert.Equal(t, "feature/x", branches[1].Name)
	assert.Equal(t, "master", branches[2].Name)

	dispatcher.AssertExpectations(t)
}

func TestGetBranch(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "42", "repository", "branches", "feature/login"}).
		Return(jsonResponse(`{"name":"feature/login","protected":false}`), nil)

	branch, err := client.GetBranch(ctx, 42, "feature/login")
	require.NoError(t, err)
	assert.Equal(t, "feature/login", branch.Name)

	dispatcher.AssertExpectations(t)
}

func TestGetBranchTransportError(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, (*Form)(nil), mock.Anything).
		Return(nil, appErrors.ErrTest)

	branch, err := client.GetBranch(ctx, 42, "missing")
	require.Error(t, err)
	assert.Nil(t, branch)
	assert.Contains(t, err.Error(), "failed to get branch")
	assert.ErrorIs(t, err, appErrors.ErrTest)
}

func TestCreateBranchEncodesParams(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Post", ctx, http.StatusCreated, mock.MatchedBy(func(f *Form) bool {
		return f.Encode() == "branch_name=feature%2Fx&ref=master"
	}), []string{"projects", "42", "repository", "branches"}).
		Return(jsonResponse(`{"name":"feature/x"}`), nil)

	branch, err := client.CreateBranch(ctx, 42, "feature/x", "master")
	require.NoError(t, err)
	assert.Equal(t, "feature/x", branch.Name)

	dispatcher.AssertExpectations(t)
}

func TestCreateBranchMissingRefFailsBeforeDispatch(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	branch, err := client.CreateBranch(ctx, 42, "feature/x", "")
	require.Error(t, err)
	assert.Nil(t, branch)
	assert.True(t, appErrors.IsRequiredFieldError(err))
	assert.Contains(t, err.Error(), "ref")

	dispatcher.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteBranch(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Delete", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "42", "repository", "branches", "old"}).
		Return(jsonResponse(``), nil)

	require.NoError(t, client.DeleteBranch(ctx, 42, "old"))
	dispatcher.AssertExpectations(t)
}

func TestProtectBranchTwiceSucceeds(t *testing.T) {
	// The service reports success on redundant protection; the client
	// must not add failures of its own
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	// A response body can only be drained once, so each expected call
	// gets its own response
	dispatcher.On("Put", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "42", "repository", "branches", "master", "protect"}).
		Return(jsonResponse(`{"name":"master","protected":true}`), nil).Once()
	dispatcher.On("Put", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "42", "repository", "branches", "master", "protect"}).
		Return(jsonResponse(`{"name":"master","protected":true}`), nil).Once()

	for i := 0; i < 2; i++ {
		branch, err := client.ProtectBranch(ctx, 42, "master")
		require.NoError(t, err)
		assert.True(t, branch.Protected)
	}

	dispatcher.AssertExpectations(t)
}

func TestUnprotectBranch(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Put", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "42", "repository", "branches", "master", "unprotect"}).
		Return(jsonResponse(`{"name":"master","protected":false}`), nil)

	branch, err := client.UnprotectBranch(ctx, 42, "master")
	require.NoError(t, err)
	assert.False(t, branch.Protected)
}

func TestListTagsKeepsServerOrder(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "7", "repository", "tags"}).
		Return(jsonResponse(`[{"name":"v2.0.0"},{"name":"v1.1.0"},{"name":"v1.0.0"}]`), nil)

	tags, err := client.ListTags(ctx, 7)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "v2.0.0", tags[0].Name)
	assert.Equal(t, "v1.0.0", tags[2].Name)
}

func TestCreateTagOmitsEmptyOptionals(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Post", ctx, http.StatusCreated, mock.MatchedBy(func(f *Form) bool {
		return f.Encode() == "tag_name=v1.0.0&ref=master"
	}), []string{"projects", "7", "repository", "tags"}).
		Return(jsonResponse(`{"name":"v1.0.0"}`), nil)

	tag, err := client.CreateTag(ctx, 7, "v1.0.0", "master", "", "")
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", tag.Name)

	dispatcher.AssertExpectations(t)
}

func TestCreateTagFromFileMatchesInlineNotes(t *testing.T) {
	ctx := context.Background()
	notesFile := testutil.WriteTestFile(t, t.TempDir(), "notes.md", "notes text")

	var inlineForm, fileForm *Form

	inlineDispatcher := NewMockDispatcher()
	inlineDispatcher.On("Post", ctx, http.StatusCreated, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { inlineForm = args.Get(2).(*Form) }).
		Return(jsonResponse(`{"name":"v1.0.0"}`), nil)

	fileDispatcher := NewMockDispatcher()
	fileDispatcher.On("Post", ctx, http.StatusCreated, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { fileForm = args.Get(2).(*Form) }).
		Return(jsonResponse(`{"name":"v1.0.0"}`), nil)

	_, err := newTestClient(inlineDispatcher).CreateTag(ctx, 7, "v1.0.0", "master", "msg", "notes text")
	require.NoError(t, err)

	_, err = newTestClient(fileDispatcher).CreateTagFromFile(ctx, 7, "v1.0.0", "master", "msg", notesFile)
	require.NoError(t, err)

	require.NotNil(t, inlineForm)
	require.NotNil(t, fileForm)
	assert.Equal(t, inlineForm.Encode(), fileForm.Encode())
}

func TestCreateTagFromFileReadFailure(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	tag, err := client.CreateTagFromFile(ctx, 7, "v1.0.0", "master", "", "/nonexistent/notes.md")
	require.Error(t, err)
	assert.Nil(t, tag)
	assert.True(t, appErrors.IsFileOperationError(err))

	dispatcher.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTag(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Delete", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "7", "repository", "tags", "v0.9.0"}).
		Return(jsonResponse(``), nil)

	require.NoError(t, client.DeleteTag(ctx, 7, "v0.9.0"))
}

func TestListTreeAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, mock.MatchedBy(func(f *Form) bool {
		return f.Encode() == "id=42&path=%2F&ref_name=master"
	}), []string{"projects", "42", "repository", "tree"}).
		Return(jsonResponse(`[{"name":"README.md","type":"blob"}]`), nil)

	items, err := client.ListTree(ctx, 42)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "README.md", items[0].Name)

	dispatcher.AssertExpectations(t)
}

func TestListTreeRecursiveSendsFlagOnlyWhenSet(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, mock.MatchedBy(func(f *Form) bool {
		return f.Encode() == "id=42&path=src&ref_name=develop&recursive=true"
	}), []string{"projects", "42", "repository", "tree"}).
		Return(jsonResponse(`[]`), nil)

	_, err := client.ListTreeRecursive(ctx, 42, "src", "develop", true)
	require.NoError(t, err)

	dispatcher.AssertExpectations(t)
}

func TestRawFileContent(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, mock.MatchedBy(func(f *Form) bool {
		return f.Encode() == "filepath=README.md"
	}), []string{"projects", "42", "repository", "blobs", "master"}).
		Return(jsonResponse("# Title\n"), nil)

	content, err := client.RawFileContent(ctx, 42, "master", "README.md")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", content)
}

func TestRawFileContentRequiresPath(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	_, err := client.RawFileContent(ctx, 42, "master", "")
	require.Error(t, err)
	assert.True(t, appErrors.IsRequiredFieldError(err))

	dispatcher.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRawBlobContentUsesBlobEndpoint(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, (*Form)(nil), []string{"projects", "42", "repository", "raw_blobs", "deadbeef"}).
		Return(jsonResponse("blob bytes"), nil)

	content, err := client.RawBlobContent(ctx, 42, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "blob bytes", content)

	dispatcher.AssertExpectations(t)
}

func TestGetRepositoryArchiveReturnsStream(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, mock.MatchedBy(func(f *Form) bool {
		return f.Encode() == "sha=abc123"
	}), []string{"projects", "42", "repository", "archive"}).
		Return(jsonResponse("tarball"), nil)

	stream, err := client.GetRepositoryArchive(ctx, 42, "abc123")
	require.NoError(t, err)
	defer func() { _ = stream.Close() }()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "tarball", string(data))
}

func TestGetRepositoryArchiveOmitsEmptySHA(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, mock.MatchedBy(func(f *Form) bool {
		return f.Empty()
	}), []string{"projects", "42", "repository", "archive"}).
		Return(jsonResponse("tarball"), nil)

	stream, err := client.GetRepositoryArchive(ctx, 42, "")
	require.NoError(t, err)
	_ = stream.Close()

	dispatcher.AssertExpectations(t)
}

func archiveResponseWithFilename(body, filename string) *Response {
	header := http.Header{}
	header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return &Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDownloadRepositoryArchive(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, mock.Anything, mock.Anything).
		Return(archiveResponseWithFilename("tarball", "repo.tar.gz"), nil)

	path, err := client.DownloadRepositoryArchive(ctx, 42, "", dir)
	require.NoError(t, err)
	assert.Equal(t, "tarball", testutil.ReadTestFile(t, path))
	assert.Contains(t, path, "repo.tar.gz")
}

func TestDownloadRepositoryArchiveUsesConfiguredDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dispatcher := NewMockDispatcher()
	client := NewClient(dispatcher, logrus.New(), dir)

	dispatcher.On("Get", ctx, http.StatusOK, mock.Anything, mock.Anything).
		Return(archiveResponseWithFilename("tarball", "repo.tar.gz"), nil)

	path, err := client.DownloadRepositoryArchive(ctx, 42, "", "")
	require.NoError(t, err)
	assert.Contains(t, path, dir)
}

func TestDownloadRepositoryArchiveMissingFilename(t *testing.T) {
	ctx := context.Background()
	dispatcher := NewMockDispatcher()
	client := newTestClient(dispatcher)

	dispatcher.On("Get", ctx, http.StatusOK, mock.Anything, mock.Anything).
		Return(jsonResponse("tarball"), nil)

	path, err := client.DownloadRepositoryArchive(ctx, 42, "", t.TempDir())
	require.ErrorIs(t, err, ErrMissingFilenameHeader)
	assert.Empty(t, path)
}
