package cmdutil

import (
	"snipgen/internal/git"
	"snipgen/internal/iostreams"
	"snipgen/internal/run"
)

// Factory provides shared dependencies for snipgen commands.
// It is a dependency injection container: the struct defines what
// dependencies exist, while internal/cmd/factory wires the real
// implementations. Tests substitute fakes field by field.
type Factory struct {
	// Version info (set at build time via ldflags).
	Version string
	Commit  string

	// IOStreams for input/output (for testability).
	IOStreams *iostreams.IOStreams

	// Env looks up environment variables, typically os.Getenv.
	Env func(string) string

	// Runner executes subprocesses (git status, dart format).
	Runner run.Runner

	// Repo opens the git repository containing a path, for best-effort
	// metadata enrichment.
	Repo func(path string) (*git.Repo, error)
}
