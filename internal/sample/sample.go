// Package sample defines the structured code samples extracted from
// documentation-comment fragments and the metadata attached to them
// during generation.
package sample

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Type is the kind of artifact a sample generates.
type Type string

const (
	// Snippet is a bare, non-runnable code excerpt.
	Snippet Type = "snippet"
	// Sample is a runnable application sample.
	Sample Type = "sample"
	// Dartpad is a runnable sample meant for embedding in DartPad.
	Dartpad Type = "dartpad"
)

// ParseType validates a --type flag value.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Snippet, Sample, Dartpad:
		return t, nil
	}
	return "", fmt.Errorf("unknown sample type %q (valid types are snippet, sample, dartpad)", s)
}

// Location identifies where a fragment came from in the original source.
type Location struct {
	Path string
	Line int
}

// CodeSample is one annotated code block extracted from a fragment.
type CodeSample struct {
	Type        Type
	Description string // prose preceding the code block, trimmed
	Source      string // the Dart source inside the fence
	Index       int    // position of the block within the fragment, from 0
	Start       Location

	// Metadata is the shared generation metadata for the invocation.
	// The orchestrator sets it on every sample before generation.
	Metadata map[string]any
}

// SourceElement is a parsed documentation fragment: the documented element
// plus every sample extracted from its comment.
type SourceElement struct {
	Name    string
	Samples []*CodeSample
}

// Metadata is the generation metadata merged into every sample produced by
// one invocation.
type Metadata struct {
	Channel string `mapstructure:"channel"`
	Serial  string `mapstructure:"serial"`
	ID      string `mapstructure:"id"`
	Package string `mapstructure:"package,omitempty"`
	Library string `mapstructure:"library,omitempty"`
	Element string `mapstructure:"element,omitempty"`
	Commit  string `mapstructure:"commit,omitempty"`
}

// Map converts the metadata to the map form attached to each sample.
func (m *Metadata) Map() (map[string]any, error) {
	out := map[string]any{}
	if err := mapstructure.Decode(m, &out); err != nil {
		return nil, fmt.Errorf("encoding sample metadata: %w", err)
	}
	return out, nil
}
