package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"snipgen/internal/channel"
	"snipgen/internal/cmdutil"
	"snipgen/internal/config"
	"snipgen/internal/generator"
	"snipgen/internal/git"
	"snipgen/internal/identity"
	"snipgen/internal/iostreams"
	"snipgen/internal/logger"
	"snipgen/internal/parser"
	"snipgen/internal/run"
	"snipgen/internal/sample"
)

// Options holds the dependencies the generate flow extracts from the
// Factory.
type Options struct {
	IOStreams *iostreams.IOStreams
	Env       func(string) string
	Runner    run.Runner
	Repo      func(path string) (*git.Repo, error)
}

// runGenerate is the whole pipeline for one invocation: validate, derive
// the artifact identity, parse the fragment, resolve the channel, merge
// metadata into each sample, generate code and HTML. There is no partial
// success; the first error aborts the run.
func runGenerate(ctx context.Context, opts *Options, inv *config.Invocation) error {
	ios := opts.IOStreams

	if inv.Input == "" {
		return cmdutil.FlagErrorf("the --input option must be specified, either on the command line or in the INPUT environment variable")
	}
	if _, err := os.Stat(inv.Input); err != nil {
		return cmdutil.FlagErrorf("the input file %s does not exist", inv.Input)
	}

	id, outputPath, err := identity.Build(inv)
	if err != nil {
		if errors.Is(err, identity.ErrMissingIdentity) {
			return cmdutil.FlagErrorWrap(err)
		}
		return err
	}
	logger.Debug().Str("id", id).Str("output", outputPath).Msg("resolved artifact identity")

	element, err := parser.Parser{}.ParseFromDartdocToolFile(
		inv.Input, inv.SourceLine, inv.Element, inv.SourcePath, inv.Type)
	if err != nil {
		return err
	}

	resolver := &channel.Resolver{Env: opts.Env, Runner: opts.Runner}
	label, err := resolver.ResolveWithRetries(ctx)
	if err != nil {
		return err
	}

	metaMap, err := buildMetadata(opts, inv, id, label)
	if err != nil {
		return err
	}

	gen := &generator.Generator{Runner: opts.Runner}
	for _, smp := range element.Samples {
		smp.Metadata = metaMap
		if err := gen.GenerateCode(ctx, smp, outputPath, inv.FormatOutput); err != nil {
			return err
		}
		html, err := gen.GenerateHTML(smp)
		if err != nil {
			return err
		}
		fmt.Fprintln(ios.Out, html)
	}

	logger.Info().
		Int("samples", len(element.Samples)).
		Str("output", outputPath).
		Str("channel", label).
		Msg("generated samples")
	return nil
}

// buildMetadata assembles the generation metadata shared by every sample of
// the invocation. The commit hash is best effort: fragments generated
// outside a git checkout simply go without one.
func buildMetadata(opts *Options, inv *config.Invocation, id, label string) (map[string]any, error) {
	meta := &sample.Metadata{
		Channel: label,
		Serial:  inv.Serial,
		ID:      id,
		Package: inv.Package,
		Library: inv.Library,
		Element: inv.Element,
	}
	if opts.Repo != nil {
		if repo, err := opts.Repo(filepath.Dir(inv.Input)); err == nil {
			if info, err := repo.HeadInfo(); err == nil {
				meta.Commit = info.Commit
			}
		}
	}
	return meta.Map()
}
