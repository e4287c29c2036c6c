// Package config builds the per-invocation context from CLI flags with
// environment-variable fallbacks.
//
// The documentation pipeline drives snipgen both ways: interactive use
// passes flags, the dartdoc integration exports PACKAGE_NAME, LIBRARY_NAME
// and friends. Flags always win; environment values only fill flags that
// were left at their defaults. Viper provides that precedence.
package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snipgen/internal/sample"
)

// DefaultPackage is the reserved package name that is never included in
// derived artifact identifiers.
const DefaultPackage = "flutter"

// Environment fallbacks for flags.
const (
	EnvInput   = "INPUT"
	EnvPackage = "PACKAGE_NAME"
	EnvLibrary = "LIBRARY_NAME"
	EnvElement = "ELEMENT_NAME"
	EnvSerial  = "INVOCATION_INDEX"
)

// Environment inputs with no flag equivalent, passed through to the parser.
const (
	EnvSourcePath = "SOURCE_PATH"
	EnvSourceLine = "SOURCE_LINE"
)

// DefaultSourcePath is used when the pipeline does not export SOURCE_PATH.
const DefaultSourcePath = "unknown.dart"

// Invocation is the immutable resolved configuration for one run.
// It is built once from flags and environment and never mutated.
type Invocation struct {
	Type            sample.Type
	Input           string
	Output          string // explicit output path; overrides identity derivation
	OutputDirectory string
	Package         string
	Library         string
	Element         string
	Serial          string
	FormatOutput    bool

	SourcePath string
	SourceLine int
}

// Load resolves the invocation context from parsed flags and the process
// environment. It validates the sample type but not the input file; the
// orchestrator owns input validation so it can report a usage error.
func Load(flags *pflag.FlagSet) (*Invocation, error) {
	v := viper.New()

	bindings := []struct {
		key string
		env string
	}{
		{"type", ""},
		{"output", ""},
		{"output-directory", ""},
		{"input", EnvInput},
		{"package", EnvPackage},
		{"library", EnvLibrary},
		{"element", EnvElement},
		{"serial", EnvSerial},
		{"format-output", ""},
	}
	for _, b := range bindings {
		if err := v.BindPFlag(b.key, flags.Lookup(b.key)); err != nil {
			return nil, fmt.Errorf("binding --%s: %w", b.key, err)
		}
		if b.env != "" {
			if err := v.BindEnv(b.key, b.env); err != nil {
				return nil, fmt.Errorf("binding %s: %w", b.env, err)
			}
		}
	}
	if err := v.BindEnv("source-path", EnvSourcePath); err != nil {
		return nil, fmt.Errorf("binding %s: %w", EnvSourcePath, err)
	}
	if err := v.BindEnv("source-line", EnvSourceLine); err != nil {
		return nil, fmt.Errorf("binding %s: %w", EnvSourceLine, err)
	}

	typ, err := sample.ParseType(v.GetString("type"))
	if err != nil {
		return nil, err
	}

	inv := &Invocation{
		Type:            typ,
		Input:           v.GetString("input"),
		Output:          v.GetString("output"),
		OutputDirectory: v.GetString("output-directory"),
		Package:         v.GetString("package"),
		Library:         v.GetString("library"),
		Element:         v.GetString("element"),
		Serial:          v.GetString("serial"),
		FormatOutput:    v.GetBool("format-output"),
		SourcePath:      v.GetString("source-path"),
		SourceLine:      parseLine(v.GetString("source-line")),
	}
	if inv.SourcePath == "" {
		inv.SourcePath = DefaultSourcePath
	}
	return inv, nil
}

// parseLine tolerates a malformed SOURCE_LINE; the line number is
// diagnostic metadata, not behavior.
func parseLine(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
