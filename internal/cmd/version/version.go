// Package version provides the "version" subcommand.
package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"snipgen/internal/cmdutil"
)

// NewCmdVersion creates the "version" subcommand.
func NewCmdVersion(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of snipgen",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(f.IOStreams.Out, Format(f.Version, f.Commit))
		},
	}
}

// Format returns the version string for display.
func Format(version, commit string) string {
	version = strings.TrimPrefix(version, "v")

	var commitStr string
	if commit != "" && commit != "none" {
		commitStr = fmt.Sprintf(" (%s)", commit)
	}

	return fmt.Sprintf("snipgen version %s%s\n", version, commitStr)
}
