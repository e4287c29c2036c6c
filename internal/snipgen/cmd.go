// Package snipgen provides the CLI entry point.
package snipgen

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"snipgen/internal/cmd/factory"
	"snipgen/internal/cmd/root"
	"snipgen/internal/cmdutil"
	"snipgen/internal/logger"
)

// Build-time variables injected via ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the snipgen CLI. It builds the Factory,
// executes the root command, and maps errors to process exit codes: usage
// errors print the usage text and exit 2, everything else exits 1. The
// outer documentation pipeline depends on the zero/non-zero split.
func Main() int {
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)
	rootCmd := root.NewCmdRoot(f)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}
	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		// Cobra already printed "Error: ..."; add the usage text.
		fmt.Fprintln(f.IOStreams.ErrOut, cmd.UsageString())
		return exitUsage
	}
	return exitError
}
