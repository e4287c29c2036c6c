// Package factory wires the default dependencies for snipgen commands.
package factory

import (
	"os"

	"snipgen/internal/cmdutil"
	"snipgen/internal/git"
	"snipgen/internal/iostreams"
	"snipgen/internal/run"
)

// New creates a Factory backed by the real process environment.
func New(version, commit string) *cmdutil.Factory {
	return &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: iostreams.System(),
		Env:       os.Getenv,
		Runner:    run.ExecRunner{},
		Repo:      git.Open,
	}
}
