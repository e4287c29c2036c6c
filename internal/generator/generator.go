// Package generator renders extracted samples into Dart artifacts and HTML
// previews.
package generator

import (
	"context"
	"fmt"
	htmltemplate "html/template"
	"os"
	"strings"
	texttemplate "text/template"

	"snipgen/internal/logger"
	"snipgen/internal/run"
	"snipgen/internal/sample"
)

// Code templates per sample type. Snippets are bare excerpts; samples and
// dartpad samples are runnable and get the standard import preamble.
const (
	snippetTemplate = `// Generated by snipgen from {{.Start.Path}}:{{.Start.Line}}.
// {{.Type}} for {{index .Metadata "id"}} on channel {{index .Metadata "channel"}}.

{{.Source}}
`

	runnableTemplate = `// Generated by snipgen from {{.Start.Path}}:{{.Start.Line}}.
// {{.Type}} for {{index .Metadata "id"}} on channel {{index .Metadata "channel"}}.

import 'package:flutter/material.dart';

{{.Source}}
`
)

const previewTemplate = `<div class="snippet-container">
{{- if .Description}}
<div class="snippet-description">{{.Description}}</div>
{{- end}}
<pre class="language-dart" data-sample-type="{{.Type}}" data-id="{{index .Metadata "id"}}" data-channel="{{index .Metadata "channel"}}" data-serial="{{index .Metadata "serial"}}"><code>{{.Source}}</code></pre>
</div>`

var codeTemplates = map[sample.Type]*texttemplate.Template{
	sample.Snippet: texttemplate.Must(texttemplate.New("snippet").Parse(snippetTemplate)),
	sample.Sample:  texttemplate.Must(texttemplate.New("sample").Parse(runnableTemplate)),
	sample.Dartpad: texttemplate.Must(texttemplate.New("dartpad").Parse(runnableTemplate)),
}

var htmlTemplate = htmltemplate.Must(htmltemplate.New("preview").Parse(previewTemplate))

// Generator writes sample artifacts.
type Generator struct {
	// Runner invokes dart format when formatting is requested.
	Runner run.Runner
}

// GenerateCode renders smp through its type template and writes the result
// to outputPath. When format is true the written file is passed through
// `dart format`; a formatter failure fails the generation.
func (g *Generator) GenerateCode(ctx context.Context, smp *sample.CodeSample, outputPath string, format bool) error {
	tmpl, ok := codeTemplates[smp.Type]
	if !ok {
		return fmt.Errorf("no code template for sample type %q", smp.Type)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, smp); err != nil {
		return fmt.Errorf("rendering %s sample: %w", smp.Type, err)
	}
	content := buf.String()
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing sample to %s: %w", outputPath, err)
	}

	if format {
		res, err := g.Runner.Run(ctx, run.Command{
			Name: "dart",
			Args: []string{"format", outputPath},
		})
		if err != nil {
			return err
		}
		if res.ExitCode != 0 {
			return fmt.Errorf("dart format failed for %s (exit %d): %s",
				outputPath, res.ExitCode, strings.TrimSpace(res.Stderr))
		}
	}

	logger.Debug().Str("output", outputPath).Str("type", string(smp.Type)).Msg("wrote sample artifact")
	return nil
}

// GenerateHTML returns the HTML preview for smp. The preview is printed to
// stdout by the orchestrator, one block per sample.
func (g *Generator) GenerateHTML(smp *sample.CodeSample) (string, error) {
	var buf strings.Builder
	if err := htmlTemplate.Execute(&buf, smp); err != nil {
		return "", fmt.Errorf("rendering HTML preview: %w", err)
	}
	return buf.String(), nil
}
