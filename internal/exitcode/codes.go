// Package exitcode defines named exit codes for the decompile-batch CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines. Per-file decompilation
// failures are reported but never escalate to the process exit status.
package exitcode

// Exit code constants for the decompile-batch CLI.
const (
	Success                 = 0   // Run completed (individual file failures included)
	Error                   = 1   // Bad input path, no matching files, unwritable output
	RuntimeMissing          = 2   // Runtime CLI not callable; no install path exists
	DecompilerInstallFailed = 3   // Decompiler tool missing after one install attempt
	Interrupted             = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case RuntimeMissing:
		return "RuntimeMissing"
	case DecompilerInstallFailed:
		return "DecompilerInstallFailed"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
