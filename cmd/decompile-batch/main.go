package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/unluckyjori/Decompiler-Script/internal/banner"
	"github.com/unluckyjori/Decompiler-Script/internal/collect"
	"github.com/unluckyjori/Decompiler-Script/internal/config"
	"github.com/unluckyjori/Decompiler-Script/internal/decompile"
	"github.com/unluckyjori/Decompiler-Script/internal/exitcode"
	"github.com/unluckyjori/Decompiler-Script/internal/logging"
	"github.com/unluckyjori/Decompiler-Script/internal/proc"
	sighandler "github.com/unluckyjori/Decompiler-Script/internal/signal"
	"github.com/unluckyjori/Decompiler-Script/internal/toolchain"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "decompile-batch",
		Short:   "Interactive batch decompiler for .NET assemblies",
		Long:    "decompile-batch verifies the .NET SDK and ilspycmd are installed, then decompiles a .dll file or every .dll in a folder into an output directory.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(run(cfg))
			return nil // unreachable
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

// run drives the checker, the collector, and the batch in order, mapping the
// error taxonomy to exit codes.
func run(cfg *config.Config) int {
	logging.SetVerbose(cfg.Verbose)
	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted — stopping...")
	})

	runner := &proc.ExecRunner{Env: toolsEnv()}

	checker := &toolchain.Checker{Cfg: cfg, Runner: runner}
	runtimeVersion, err := checker.Check(ctx)
	if err != nil {
		switch {
		case errors.Is(err, toolchain.ErrRuntimeMissing):
			banner.PrintFatalBanner(".NET SDK not found",
				"Install the .NET SDK to continue:",
				"https://dotnet.microsoft.com/download")
			return exitcode.RuntimeMissing
		case errors.Is(err, toolchain.ErrDecompilerInstallFailed):
			banner.PrintFatalBanner("ilspycmd install failed", err.Error())
			return exitcode.DecompilerInstallFailed
		default:
			logging.Error(err.Error())
			return exitcode.Error
		}
	}

	banner.PrintStartupBanner(runtimeVersion, cfg.DecompilerCommand)

	collector := &collect.Collector{
		Cfg:      cfg,
		Prompter: collect.NewLinePrompter(os.Stdin, os.Stdout),
	}
	// A mistyped source path re-prompts instead of aborting the run.
	var targets []collect.Target
	var outDir string
	for {
		targets, outDir, err = collector.CollectTargets()
		if err == nil {
			break
		}
		if errors.Is(err, collect.ErrCancelled) {
			logging.Info("Operation cancelled. Re-run to select a different path.")
			return exitcode.Success
		}
		if ctx.Err() != nil {
			return exitcode.Interrupted
		}
		if errors.Is(err, collect.ErrPathNotFound) {
			logging.Error(err.Error() + ". Please try again.")
			continue
		}
		logging.Error(err.Error())
		return exitcode.Error
	}

	batch := &decompile.Batch{Cfg: cfg, Runner: runner}
	results, err := batch.DecompileAll(ctx, targets, outDir)
	if err != nil {
		logging.Error(err.Error())
		return exitcode.Error
	}
	if ctx.Err() != nil {
		return exitcode.Interrupted
	}

	summary := decompile.Summarize(results)
	banner.PrintSummaryBanner(summary.Succeeded, summary.Failed, outDir, int(time.Since(start).Seconds()))

	// Per-file failures are reported above but never change the exit status.
	return exitcode.Success
}

// toolsEnv returns the process environment with the runtime's global tool
// directory on PATH, so a freshly installed decompiler resolves without a new
// shell.
func toolsEnv() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return proc.WithToolsPath(os.Environ(), filepath.Join(home, ".dotnet", "tools"))
}
