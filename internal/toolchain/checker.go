// Package toolchain verifies that the external tools required for
// decompilation are callable, installing the decompiler tool when it is
// missing.
//
// The checker is the only component with a mutating side effect outside the
// process: a successful install adds a global package on the host.
package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/unluckyjori/Decompiler-Script/internal/config"
	"github.com/unluckyjori/Decompiler-Script/internal/logging"
	"github.com/unluckyjori/Decompiler-Script/internal/proc"
)

// ToolStatus reports whether a single required tool answered its version query.
type ToolStatus struct {
	Name      string
	Available bool
}

// Checker probes the runtime CLI and the decompiler tool through an injected
// process runner.
type Checker struct {
	Cfg    *config.Config
	Runner proc.Runner
}

// Check verifies both required tools, attempting one install of the decompiler
// tool if it is missing.
//
// Returns the trimmed runtime version string on success. Failure modes:
// ErrRuntimeMissing if the runtime CLI cannot be executed (unrecoverable),
// ErrDecompilerInstallFailed if the decompiler tool is still unavailable after
// the single install attempt.
func (c *Checker) Check(ctx context.Context) (string, error) {
	logging.Info(fmt.Sprintf("Checking for %s...", c.Cfg.RuntimeCommand))
	st, version := c.probe(ctx, c.Cfg.RuntimeCommand)
	if !st.Available {
		return "", fmt.Errorf("%w: %s did not answer %s", ErrRuntimeMissing, c.Cfg.RuntimeCommand, c.Cfg.VersionArg)
	}
	logging.Success(fmt.Sprintf("%s found: version %s", c.Cfg.RuntimeCommand, version))

	logging.Info(fmt.Sprintf("Checking for %s...", c.Cfg.DecompilerCommand))
	if st, _ := c.probe(ctx, c.Cfg.DecompilerCommand); st.Available {
		logging.Success(fmt.Sprintf("%s is already installed.", c.Cfg.DecompilerCommand))
		return version, nil
	}

	logging.Warn(fmt.Sprintf("%s not found. Attempting to install it globally...", c.Cfg.DecompilerCommand))
	res, err := c.Runner.Run(ctx, c.Cfg.RuntimeCommand, c.Cfg.InstallArgs...)
	if err != nil {
		return "", fmt.Errorf("%w: install command: %v", ErrDecompilerInstallFailed, err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%w: install command exited %d: %s",
			ErrDecompilerInstallFailed, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	// Single re-check after the install; no retries beyond this.
	if st, _ := c.probe(ctx, c.Cfg.DecompilerCommand); !st.Available {
		return "", fmt.Errorf("%w: %s still unavailable after install", ErrDecompilerInstallFailed, c.Cfg.DecompilerCommand)
	}
	logging.Success(fmt.Sprintf("%s installed successfully.", c.Cfg.DecompilerCommand))
	return version, nil
}

// probe runs a tool's version query and reports availability plus the trimmed
// first line of its stdout.
func (c *Checker) probe(ctx context.Context, tool string) (ToolStatus, string) {
	res, err := c.Runner.Run(ctx, tool, c.Cfg.VersionArg)
	if err != nil || res.ExitCode != 0 {
		return ToolStatus{Name: tool, Available: false}, ""
	}
	version := strings.TrimSpace(res.Stdout)
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = strings.TrimSpace(version[:i])
	}
	return ToolStatus{Name: tool, Available: true}, version
}
