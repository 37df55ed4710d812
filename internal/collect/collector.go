// Package collect prompts the operator for a source path and an output
// directory, resolving the source into the list of assembly files to
// decompile.
package collect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unluckyjori/Decompiler-Script/internal/config"
	"github.com/unluckyjori/Decompiler-Script/internal/logging"
)

// Error taxonomy for input collection.
var (
	// ErrPathNotFound indicates the prompted source path does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrNoMatchingFiles indicates a directory source contained no assembly
	// files.
	ErrNoMatchingFiles = errors.New("no matching assembly files")
	// ErrCancelled indicates the operator declined the batch confirmation.
	// This is a normal exit, not a failure.
	ErrCancelled = errors.New("operation cancelled")
)

// Target is one assembly file selected for decompilation.
type Target struct {
	Path string
}

// Collector gathers decompilation inputs interactively.
type Collector struct {
	Cfg      *config.Config
	Prompter Prompter
}

// CollectTargets prompts for the source path and the output directory.
//
// A source file becomes the sole target without extension validation (the
// operator-supplied single file is trusted). A source directory is enumerated
// non-recursively for entries matching the assembly extension
// case-insensitively; the matches are listed and the operator must confirm
// before the batch proceeds. The output directory need not exist yet.
func (c *Collector) CollectTargets() ([]Target, string, error) {
	raw, err := c.Prompter.Ask(fmt.Sprintf("Enter the path to the %s file or a folder:", c.Cfg.AssemblyExt))
	if err != nil {
		return nil, "", err
	}
	source := CleanPath(raw)

	info, err := os.Stat(source)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrPathNotFound, source)
	}

	var targets []Target
	if info.IsDir() {
		targets, err = c.enumerate(source)
		if err != nil {
			return nil, "", err
		}
	} else {
		targets = []Target{{Path: source}}
	}

	rawOut, err := c.Prompter.Ask("Enter the output folder path:")
	if err != nil {
		return nil, "", err
	}
	return targets, CleanPath(rawOut), nil
}

// enumerate lists immediate directory entries matching the assembly extension
// and asks the operator to confirm the batch.
func (c *Collector) enumerate(dir string) ([]Target, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var targets []Target
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), c.Cfg.AssemblyExt) {
			targets = append(targets, Target{Path: filepath.Join(dir, entry.Name())})
		}
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrNoMatchingFiles, c.Cfg.AssemblyExt, dir)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].Path < targets[j].Path })

	logging.Info(fmt.Sprintf("Found the following %s files:", c.Cfg.AssemblyExt))
	for _, t := range targets {
		fmt.Printf("  - %s\n", filepath.Base(t.Path))
	}

	confirmed, err := c.Prompter.Confirm(fmt.Sprintf("Do you want to decompile all %d of them?", len(targets)))
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrCancelled
	}
	return targets, nil
}

// CleanPath strips surrounding quotes from an operator-supplied path and
// expands a leading ~ to the home directory.
func CleanPath(raw string) string {
	p := strings.Trim(strings.TrimSpace(raw), `'"`)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
		}
	}
	return p
}
