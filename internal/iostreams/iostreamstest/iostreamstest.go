// Package iostreamstest provides test doubles for the iostreams package.
package iostreamstest

import (
	"bytes"
	"strings"

	"snipgen/internal/iostreams"
)

// TestIOStreams wraps IOStreams for testing with accessible buffers.
type TestIOStreams struct {
	*iostreams.IOStreams
	InBuf  *bytes.Buffer
	OutBuf *bytes.Buffer
	ErrBuf *bytes.Buffer
}

// New creates IOStreams for testing: non-interactive, colors disabled,
// everything captured in buffers.
func New() *TestIOStreams {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	ios := &iostreams.IOStreams{In: in, Out: out, ErrOut: errOut}
	ios.SetStdinTTY(false)
	ios.SetStdoutTTY(false)
	ios.SetStderrTTY(false)
	ios.SetColorEnabled(false)

	return &TestIOStreams{IOStreams: ios, InBuf: in, OutBuf: out, ErrBuf: errOut}
}

// SetInput seeds stdin with s.
func (t *TestIOStreams) SetInput(s string) {
	t.InBuf.Reset()
	t.InBuf.WriteString(strings.TrimLeft(s, "\n"))
}
