// Package proc provides the subprocess execution capability used for every
// external-tool interaction in the decompile-batch CLI.
//
// All three collaborators (the runtime CLI, the decompiler tool, and the
// package-manager install command) are invoked through the Runner interface,
// so tests substitute fake processes returning fixed exit codes.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Result captures the observable outcome of a finished subprocess.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs an external command to completion.
//
// A process that started and exited reports its status through
// Result.ExitCode with a nil error; the error return is reserved for launch
// failures (command not found, permission denied).
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner implements Runner on os/exec.
//
// Env, when non-nil, replaces the child process environment; a nil Env
// inherits the parent's. The checker uses this to extend PATH with the
// runtime's global tool directory.
type ExecRunner struct {
	Env []string
}

// Run executes name with args and blocks until the process exits.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.Env != nil {
		cmd.Env = r.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and exited non-zero; not a launch failure.
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("start %s: %w", name, err)
	}

	return res, nil
}

// WithToolsPath returns a copy of environ with dir appended to PATH, unless
// PATH already contains it. An absent PATH entry is created.
func WithToolsPath(environ []string, dir string) []string {
	const prefix = "PATH="

	out := make([]string, 0, len(environ)+1)
	found := false
	for _, kv := range environ {
		if !found && len(kv) >= len(prefix) && kv[:len(prefix)] == prefix {
			found = true
			if pathContains(kv[len(prefix):], dir) {
				out = append(out, kv)
				continue
			}
			out = append(out, kv+string(os.PathListSeparator)+dir)
			continue
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, prefix+dir)
	}
	return out
}

func pathContains(path, dir string) bool {
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == os.PathListSeparator {
			if path[start:i] == dir {
				return true
			}
			start = i + 1
		}
	}
	return false
}
