// Package parser extracts code samples from dartdoc tool-file fragments.
//
// A fragment is the body dartdoc hands to an external tool: free-form
// description prose interleaved with ```dart fenced code blocks. Each
// fenced block becomes one sample; the prose accumulated since the previous
// block is its description.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"snipgen/internal/sample"
)

const (
	fenceOpen  = "```dart"
	fenceClose = "```"
)

// Parser turns an input fragment file into a SourceElement.
type Parser struct{}

// ParseFromDartdocToolFile parses the fragment in inputPath.
//
// startLine and sourcePath locate the fragment in the original library
// source (from SOURCE_LINE/SOURCE_PATH); element names the documented API
// element. Every sample in the result carries typ.
func (Parser) ParseFromDartdocToolFile(inputPath string, startLine int, element, sourcePath string, typ sample.Type) (*sample.SourceElement, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening input fragment: %w", err)
	}
	defer f.Close()

	el := &sample.SourceElement{Name: element}

	var (
		prose     []string
		code      []string
		inFence   bool
		fenceLine int
		lineNo    int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case !inFence && trimmed == fenceOpen:
			inFence = true
			fenceLine = lineNo
			code = code[:0]
		case inFence && trimmed == fenceClose:
			inFence = false
			el.Samples = append(el.Samples, &sample.CodeSample{
				Type:        typ,
				Description: strings.TrimSpace(strings.Join(prose, "\n")),
				Source:      strings.Join(code, "\n"),
				Index:       len(el.Samples),
				Start: sample.Location{
					Path: sourcePath,
					Line: startLine + fenceLine,
				},
			})
			prose = prose[:0]
		case inFence:
			code = append(code, line)
		default:
			prose = append(prose, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input fragment: %w", err)
	}
	if inFence {
		return nil, fmt.Errorf("unterminated code block starting at line %d of %s", fenceLine, inputPath)
	}
	if len(el.Samples) == 0 {
		return nil, fmt.Errorf("no code samples found in %s", inputPath)
	}
	return el, nil
}
