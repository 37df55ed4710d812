// Package config defines the decompile-batch configuration model and default
// values.
//
// Nothing is persisted and no environment is read here: main assembles a
// Config once and passes it explicitly into each component, so tests can
// substitute tool names and extensions without touching process state.
package config

// Config holds every configuration field for the decompile-batch CLI.
type Config struct {
	// External tool command names.
	RuntimeCommand    string
	DecompilerCommand string

	// Arguments passed to the runtime CLI to install the decompiler tool
	// as a global package (e.g. "tool install --global ilspycmd").
	InstallArgs []string

	// Version-query argument understood by both external tools.
	VersionArg string

	// File extension (including the dot) that marks an assembly file.
	// Matched case-insensitively when enumerating directories.
	AssemblyExt string

	// Runtime flags.
	Verbose bool
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		RuntimeCommand:    "dotnet",
		DecompilerCommand: "ilspycmd",
		InstallArgs:       []string{"tool", "install", "--global", "ilspycmd"},
		VersionArg:        "--version",
		AssemblyExt:       ".dll",
	}
}
