package gitlab

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithDisposition(value string) *Response {
	header := http.Header{}
	if value != "" {
		header.Set("Content-Disposition", value)
	}
	return &Response{StatusCode: http.StatusOK, Header: header}
}

func TestFilenameFromDispositionQuoted(t *testing.T) {
	resp := responseWithDisposition(`attachment; filename="repo.tar.gz"`)

	name, err := filenameFromDisposition(resp)
	require.NoError(t, err)
	assert.Equal(t, "repo.tar.gz", name)
}

func TestFilenameFromDispositionUnquoted(t *testing.T) {
	resp := responseWithDisposition(`attachment; filename=repo.tar.gz`)

	name, err := filenameFromDisposition(resp)
	require.NoError(t, err)
	assert.Equal(t, "repo.tar.gz", name)
}

func TestFilenameFromDispositionMissingHeader(t *testing.T) {
	resp := responseWithDisposition("")

	name, err := filenameFromDisposition(resp)
	require.ErrorIs(t, err, ErrMissingFilenameHeader)
	assert.Empty(t, name)
}

func TestFilenameFromDispositionNoFilenameToken(t *testing.T) {
	resp := responseWithDisposition("attachment")

	name, err := filenameFromDisposition(resp)
	require.ErrorIs(t, err, ErrMissingFilenameHeader)
	assert.Empty(t, name)
}

func TestFilenameFromDispositionMalformedButRecoverable(t *testing.T) {
	// Some proxies emit disposition values mime.ParseMediaType rejects
	resp := responseWithDisposition(`attachment;; filename="project-master.tar.gz"`)

	name, err := filenameFromDisposition(resp)
	require.NoError(t, err)
	assert.Equal(t, "project-master.tar.gz", name)
}
