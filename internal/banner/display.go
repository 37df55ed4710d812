// Package banner provides colored banner display functions for the
// decompile-batch CLI.
//
// All banner functions write formatted output to stdout with color-coded
// headers and separators. These frame the start and end of a decompilation
// run.
package banner

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/unluckyjori/Decompiler-Script/internal/logging"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// PrintStartupBanner displays the startup banner with toolchain info.
//
// Parameters:
//   - runtimeVersion: Version string reported by the runtime CLI
//   - decompiler: Decompiler tool command name
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  decompile-batch - .NET assembly decompiler
//	═══════════════════════════════════════════════════
//	  Runtime:    8.0.404
//	  Decompiler: ilspycmd
//	═══════════════════════════════════════════════════
func PrintStartupBanner(runtimeVersion string, decompiler string) {
	sep := headerColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(headerColor("  decompile-batch - .NET assembly decompiler"))
	fmt.Println(sep)
	fmt.Printf("  Runtime:    %s\n", runtimeVersion)
	fmt.Printf("  Decompiler: %s\n", decompiler)
	fmt.Println(sep)
}

// PrintSummaryBanner displays the end-of-run banner with per-file counts.
// The banner is green when every invocation succeeded and yellow otherwise.
//
// Parameters:
//   - succeeded: Number of assemblies decompiled successfully
//   - failed: Number of assemblies that failed
//   - outDir: Output directory the results were written to
//   - durationSecs: Total run duration in seconds
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ Decompilation complete
//	  Succeeded:  4
//	  Failed:     1
//	  Output:     ./out
//	  Duration:   1m 12s
//	═══════════════════════════════════════════════════
func PrintSummaryBanner(succeeded int, failed int, outDir string, durationSecs int) {
	paint := successColor
	headline := "  ✓ Decompilation complete"
	if failed > 0 {
		paint = warnColor
		headline = "  ⚠ Decompilation finished with failures"
	}
	sep := paint("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(paint(headline))
	fmt.Printf("  Succeeded:  %d\n", succeeded)
	fmt.Printf("  Failed:     %d\n", failed)
	fmt.Printf("  Output:     %s\n", outDir)
	fmt.Printf("  Duration:   %s\n", logging.FormatDuration(durationSecs))
	fmt.Println(sep)
}

// PrintFatalBanner displays an unrecoverable-error banner with guidance text.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✗ .NET SDK not found
//	═══════════════════════════════════════════════════
//	  Install the .NET SDK to continue:
//	  https://dotnet.microsoft.com/download
//	═══════════════════════════════════════════════════
func PrintFatalBanner(headline string, guidance ...string) {
	sep := errorColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(errorColor("  ✗ " + headline))
	if len(guidance) > 0 {
		fmt.Println(sep)
		for _, line := range guidance {
			fmt.Printf("  %s\n", line)
		}
	}
	fmt.Println(sep)
}
