// Package root implements the snipgen command.
package root

import (
	"github.com/spf13/cobra"

	"snipgen/internal/cmd/version"
	"snipgen/internal/cmdutil"
	"snipgen/internal/config"
	"snipgen/internal/logger"
	"snipgen/internal/sample"
)

// NewCmdRoot creates the root command for the snipgen CLI.
//
// snipgen is invoked once per documentation fragment by the documentation
// pipeline, so the root command is the tool: it carries the generation
// flags directly rather than hiding them under a subcommand.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	opts := &Options{
		IOStreams: f.IOStreams,
		Env:       f.Env,
		Runner:    f.Runner,
		Repo:      f.Repo,
	}

	var debug bool

	cmd := &cobra.Command{
		Use:   "snipgen",
		Short: "Generate code sample artifacts from documentation-comment fragments",
		Long: `Snipgen extracts annotated code samples from a dartdoc comment fragment,
writes a runnable or displayable Dart artifact to a deterministic output
location, and prints an HTML preview per sample to stdout.

The tool is driven by the documentation pipeline: most options fall back to
environment variables (INPUT, PACKAGE_NAME, LIBRARY_NAME, ELEMENT_NAME,
INVOCATION_INDEX) when the corresponding flag is not given. The release
channel recorded in sample metadata comes from LUCI_BRANCH when set, else
from git in FLUTTER_ROOT.`,
		Example: `  # Generate a dartpad sample from a fragment file
  snipgen --input fragment.txt --library widgets --element Container

  # Write to an explicit location without formatting
  snipgen --input fragment.txt --output samples/container.dart --format-output=false`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		Version:       version.Format(f.Version, f.Commit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initializeLogger(debug, opts.Env)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := config.Load(cmd.Flags())
			if err != nil {
				return cmdutil.FlagErrorWrap(err)
			}
			return runGenerate(cmd.Context(), opts, inv)
		},
	}

	cmd.SetVersionTemplate(`{{.Version}}`)

	cmd.Flags().String("type", string(sample.Dartpad), "Type of sample to generate: snippet, sample, or dartpad")
	cmd.Flags().String("output", "", "Explicit output file path; overrides the derived identity")
	cmd.Flags().String("output-directory", ".", "Base directory for derived output paths")
	cmd.Flags().String("input", "", "Path to the source fragment file (env: INPUT)")
	cmd.Flags().String("package", "", "Package name component of the artifact id (env: PACKAGE_NAME)")
	cmd.Flags().String("library", "", "Library name component of the artifact id (env: LIBRARY_NAME)")
	cmd.Flags().String("element", "", "Element name component of the artifact id (env: ELEMENT_NAME)")
	cmd.Flags().String("serial", "", "Serial number component of the artifact id (env: INVOCATION_INDEX)")
	cmd.Flags().Bool("format-output", true, "Run dart format on the generated artifact")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	cmd.AddCommand(version.NewCmdVersion(f))

	return cmd
}

// initializeLogger sets up console logging, plus rotating file logging when
// SNIPGEN_LOG_DIR points somewhere. File logging failures fall back to
// console-only; a broken log file must not fail a pipeline run.
func initializeLogger(debug bool, env func(string) string) {
	logsDir := env("SNIPGEN_LOG_DIR")
	if logsDir == "" {
		logger.Init(debug)
		return
	}
	if err := logger.InitWithFile(debug, logsDir, &logger.LoggingConfig{}); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
}
