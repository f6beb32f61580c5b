package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintVersion(t *testing.T) {
	setFlags(t, 0)
	buf := captureOutput(t)

	require.NoError(t, printVersion())

	out := buf.String()
	assert.Contains(t, out, "gitlab-repo dev")
	assert.Contains(t, out, runtime.Version())
}

func TestPrintVersionJSON(t *testing.T) {
	setFlags(t, 0)
	globalFlags.JSONOutput = true
	buf := captureOutput(t)

	require.NoError(t, printVersion())
	assert.Contains(t, buf.String(), `"version": "dev"`)
}
