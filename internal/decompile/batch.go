// Package decompile runs the decompiler tool over a batch of assembly files,
// isolating per-file failures so one bad assembly never aborts the rest.
package decompile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unluckyjori/Decompiler-Script/internal/collect"
	"github.com/unluckyjori/Decompiler-Script/internal/config"
	"github.com/unluckyjori/Decompiler-Script/internal/logging"
	"github.com/unluckyjori/Decompiler-Script/internal/proc"
)

// ErrOutputPathUnwritable indicates the output directory could not be created.
var ErrOutputPathUnwritable = errors.New("output path unwritable")

// InvocationResult records the outcome of one decompiler invocation.
type InvocationResult struct {
	Target    collect.Target
	ExitCode  int
	Succeeded bool
}

// Summary aggregates a result list for reporting.
type Summary struct {
	Succeeded int
	Failed    int
}

// Summarize counts successes and failures in results.
func Summarize(results []InvocationResult) Summary {
	var s Summary
	for _, r := range results {
		if r.Succeeded {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

// Batch invokes the decompiler tool through an injected process runner.
type Batch struct {
	Cfg    *config.Config
	Runner proc.Runner
}

// DecompileAll decompiles every target, in order, into outDir.
//
// The output directory is created (with intermediates) before the first
// invocation; a pre-existing directory is left untouched. With more than one
// target, each assembly decompiles into its own subdirectory named after the
// file so outputs don't collide. A failing invocation is recorded and the loop
// continues; the returned slice always holds one result per target.
func (b *Batch) DecompileAll(ctx context.Context, targets []collect.Target, outDir string) ([]InvocationResult, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputPathUnwritable, err)
	}

	perFileDirs := len(targets) > 1
	results := make([]InvocationResult, 0, len(targets))
	for _, target := range targets {
		dest := outDir
		if perFileDirs {
			dest = filepath.Join(outDir, baseName(target.Path))
		}

		logging.Info(fmt.Sprintf("Decompiling '%s' to '%s'...", target.Path, dest))
		res, err := b.Runner.Run(ctx, b.Cfg.DecompilerCommand, "-p", target.Path, "-o", dest)

		result := InvocationResult{Target: target}
		switch {
		case err != nil:
			result.ExitCode = -1
			logging.Error(fmt.Sprintf("Failed to decompile '%s': %v", target.Path, err))
		case res.ExitCode != 0:
			result.ExitCode = res.ExitCode
			logging.Error(fmt.Sprintf("Failed to decompile '%s' (exit %d)", target.Path, res.ExitCode))
		default:
			result.Succeeded = true
			logging.Success(fmt.Sprintf("Decompilation of '%s' complete.", filepath.Base(target.Path)))
		}
		results = append(results, result)
	}

	return results, nil
}

// baseName strips the directory and extension from an assembly path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
