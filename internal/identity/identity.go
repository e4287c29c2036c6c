// Package identity derives the deterministic artifact id and output path
// for one invocation.
//
// The id names the generated artifact in metadata and HTML previews; the
// output path is where the generator writes. Both are pure functions of the
// invocation context, so repeated pipeline runs land on the same file.
package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"snipgen/internal/config"
)

// ErrMissingIdentity is returned when no explicit output path was given and
// no component is available to build an id.
var ErrMissingIdentity = errors.New(
	"at least one of --output, --package, --library, --element, or --serial must be specified")

// nonWordRe matches runs of characters that are not safe in an id component.
var nonWordRe = regexp.MustCompile(`\W+`)

// Sanitize lower-cases s and collapses every run of non-word characters
// into a single underscore. Sanitizing an already sanitized string is a
// no-op.
func Sanitize(s string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(s), "_")
}

// Build returns the artifact id and resolved output path for inv.
//
// With an explicit output path the id is the path's filename without
// extension, and the path is used verbatim when absolute or joined under
// the output directory when relative. Otherwise the id is the dot-joined
// concatenation of the non-empty sanitized components package, library,
// element, serial in that fixed order, skipping the package when it equals
// the reserved default, and the path is <outputDirectory>/<id>.dart.
//
// The ancestor directories of the output path are created before returning.
func Build(inv *config.Invocation) (id, outputPath string, err error) {
	if inv.Output != "" {
		base := filepath.Base(inv.Output)
		id = strings.TrimSuffix(base, filepath.Ext(base))
		outputPath = inv.Output
		if !filepath.IsAbs(outputPath) {
			outputPath = filepath.Join(inv.OutputDirectory, outputPath)
		}
	} else {
		var components []string
		if inv.Package != "" && inv.Package != config.DefaultPackage {
			components = append(components, Sanitize(inv.Package))
		}
		if inv.Library != "" {
			components = append(components, Sanitize(inv.Library))
		}
		if inv.Element != "" {
			components = append(components, inv.Element)
		}
		if inv.Serial != "" {
			components = append(components, inv.Serial)
		}
		if len(components) == 0 {
			return "", "", ErrMissingIdentity
		}
		id = strings.Join(components, ".")
		outputPath = filepath.Join(inv.OutputDirectory, id+".dart")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", "", fmt.Errorf("creating output directory: %w", err)
	}
	return id, outputPath, nil
}
