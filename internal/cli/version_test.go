package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/casealert/casealert/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_Plain(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(options{stdout: &stdout, stderr: &stderr})
	cmd.SetArgs([]string{"version", "--plain"})

	require.NoError(t, execute(cmd, &stderr))
	assert.Contains(t, stdout.String(), "casealert "+build.Version+"\n")
	assert.Contains(t, stdout.String(), "platform: "+runtime.GOOS+"/"+runtime.GOARCH)
	assert.Empty(t, stderr.String())
}

func TestVersionCommand_Pretty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(options{stdout: &stdout, stderr: &stderr})
	cmd.SetArgs([]string{"v"})

	require.NoError(t, execute(cmd, &stderr))
	assert.Contains(t, stdout.String(), "Version")
	assert.Contains(t, stdout.String(), build.Version)
}

func TestVersionCommand_RejectsArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(options{stdout: &stdout, stderr: &stderr})
	cmd.SetArgs([]string{"version", "extra"})

	err := execute(cmd, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Runtime Error")
}

func TestVersionCommand_MarksDevBuild(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(options{stdout: &stdout, stderr: &stderr})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, execute(cmd, &stderr))
	require.True(t, build.IsDevBuild(), "tests run without release ldflags")
	assert.Contains(t, stdout.String(), "development build")
}
