package proc

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	runner := &ExecRunner{}
	ctx := context.Background()

	t.Run("successful command reports exit code zero", func(t *testing.T) {
		res, err := runner.Run(ctx, "true")
		require.NoError(t, err)
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("failing command reports non-zero exit with nil error", func(t *testing.T) {
		res, err := runner.Run(ctx, "false")
		require.NoError(t, err, "a process that ran and exited non-zero is not a launch failure")
		assert.NotEqual(t, 0, res.ExitCode)
	})

	t.Run("captures stdout", func(t *testing.T) {
		res, err := runner.Run(ctx, "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", strings.TrimSpace(res.Stdout))
		assert.Empty(t, res.Stderr)
	})

	t.Run("captures stderr", func(t *testing.T) {
		res, err := runner.Run(ctx, "sh", "-c", "echo oops >&2; exit 3")
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, "oops", strings.TrimSpace(res.Stderr))
	})

	t.Run("missing binary is a launch failure", func(t *testing.T) {
		_, err := runner.Run(ctx, "this-tool-definitely-does-not-exist-12345")
		require.Error(t, err)
	})

	t.Run("respects replaced environment", func(t *testing.T) {
		r := &ExecRunner{Env: []string{"PATH=/usr/bin:/bin", "MARKER=yes"}}
		res, err := r.Run(ctx, "sh", "-c", "echo $MARKER")
		require.NoError(t, err)
		assert.Equal(t, "yes", strings.TrimSpace(res.Stdout))
	})

	t.Run("cancelled context kills the process", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		res, err := runner.Run(cctx, "sleep", "10")
		// Either the start fails or the process is killed with a non-zero
		// status; it must not report success.
		if err == nil {
			assert.NotEqual(t, 0, res.ExitCode)
		}
	})
}

func TestWithToolsPath(t *testing.T) {
	t.Run("appends missing directory to PATH", func(t *testing.T) {
		env := WithToolsPath([]string{"PATH=/usr/bin:/bin", "HOME=/home/x"}, "/home/x/.dotnet/tools")
		assert.Contains(t, env, "PATH=/usr/bin:/bin:/home/x/.dotnet/tools")
		assert.Contains(t, env, "HOME=/home/x")
	})

	t.Run("leaves PATH untouched if directory already present", func(t *testing.T) {
		in := []string{"PATH=/usr/bin:/home/x/.dotnet/tools:/bin"}
		env := WithToolsPath(in, "/home/x/.dotnet/tools")
		assert.Equal(t, in, env)
	})

	t.Run("does not match partial path components", func(t *testing.T) {
		env := WithToolsPath([]string{"PATH=/home/x/.dotnet/tools-extra"}, "/home/x/.dotnet/tools")
		assert.Contains(t, env, "PATH=/home/x/.dotnet/tools-extra:/home/x/.dotnet/tools")
	})

	t.Run("creates PATH when absent", func(t *testing.T) {
		env := WithToolsPath([]string{"HOME=/home/x"}, "/opt/tools")
		assert.Contains(t, env, "PATH=/opt/tools")
	})

	t.Run("idempotent when applied twice", func(t *testing.T) {
		once := WithToolsPath([]string{"PATH=/bin"}, "/opt/tools")
		twice := WithToolsPath(once, "/opt/tools")
		assert.Equal(t, once, twice)
	})
}
