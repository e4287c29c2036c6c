package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snipgen/internal/sample"
)

// newFlags mirrors the generation flags the root command declares.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("snipgen", pflag.ContinueOnError)
	flags.String("type", string(sample.Dartpad), "")
	flags.String("output", "", "")
	flags.String("output-directory", ".", "")
	flags.String("input", "", "")
	flags.String("package", "", "")
	flags.String("library", "", "")
	flags.String("element", "", "")
	flags.String("serial", "", "")
	flags.Bool("format-output", true, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	inv, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, sample.Dartpad, inv.Type)
	assert.Equal(t, ".", inv.OutputDirectory)
	assert.True(t, inv.FormatOutput)
	assert.Equal(t, DefaultSourcePath, inv.SourcePath)
	assert.Zero(t, inv.SourceLine)
}

func TestLoad_Flags(t *testing.T) {
	inv, err := Load(newFlags(t,
		"--type", "snippet",
		"--input", "frag.txt",
		"--package", "my_pkg",
		"--library", "widgets",
		"--element", "Container",
		"--serial", "3",
		"--format-output=false",
	))
	require.NoError(t, err)

	assert.Equal(t, sample.Snippet, inv.Type)
	assert.Equal(t, "frag.txt", inv.Input)
	assert.Equal(t, "my_pkg", inv.Package)
	assert.Equal(t, "widgets", inv.Library)
	assert.Equal(t, "Container", inv.Element)
	assert.Equal(t, "3", inv.Serial)
	assert.False(t, inv.FormatOutput)
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv(EnvInput, "env-frag.txt")
	t.Setenv(EnvPackage, "env_pkg")
	t.Setenv(EnvLibrary, "env_lib")
	t.Setenv(EnvElement, "EnvElement")
	t.Setenv(EnvSerial, "7")

	inv, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "env-frag.txt", inv.Input)
	assert.Equal(t, "env_pkg", inv.Package)
	assert.Equal(t, "env_lib", inv.Library)
	assert.Equal(t, "EnvElement", inv.Element)
	assert.Equal(t, "7", inv.Serial)
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvInput, "from-env.txt")
	t.Setenv(EnvLibrary, "env_lib")

	inv, err := Load(newFlags(t, "--input", "from-flag.txt", "--library", "flag_lib"))
	require.NoError(t, err)

	assert.Equal(t, "from-flag.txt", inv.Input)
	assert.Equal(t, "flag_lib", inv.Library)
}

func TestLoad_SourceLocation(t *testing.T) {
	t.Setenv(EnvSourcePath, "lib/src/widgets/container.dart")
	t.Setenv(EnvSourceLine, "421")

	inv, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "lib/src/widgets/container.dart", inv.SourcePath)
	assert.Equal(t, 421, inv.SourceLine)
}

func TestLoad_MalformedSourceLine(t *testing.T) {
	t.Setenv(EnvSourceLine, "not-a-number")

	inv, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Zero(t, inv.SourceLine)
}

func TestLoad_InvalidType(t *testing.T) {
	_, err := Load(newFlags(t, "--type", "gist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gist")
}
