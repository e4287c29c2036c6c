package iostreams

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTTYDetection_NonFileStreams(t *testing.T) {
	s := &IOStreams{
		In:          &bytes.Buffer{},
		Out:         &bytes.Buffer{},
		ErrOut:      &bytes.Buffer{},
		isInputTTY:  -1,
		isOutputTTY: -1,
		isStderrTTY: -1,
	}

	assert.False(t, s.IsInputTTY())
	assert.False(t, s.IsOutputTTY())
	assert.False(t, s.IsStderrTTY())
}

func TestTTYOverrides(t *testing.T) {
	s := &IOStreams{}
	s.SetStdinTTY(true)
	s.SetStdoutTTY(true)
	s.SetStderrTTY(true)

	assert.True(t, s.IsInputTTY())
	assert.True(t, s.IsOutputTTY())
	assert.True(t, s.IsStderrTTY())
}

func TestColorEnabled(t *testing.T) {
	s := &IOStreams{Out: &bytes.Buffer{}, colorEnabled: -1, isOutputTTY: -1}
	assert.False(t, s.ColorEnabled(), "auto mode follows stdout TTY")

	s.SetStdoutTTY(true)
	assert.True(t, s.ColorEnabled())

	s.SetColorEnabled(false)
	assert.False(t, s.ColorEnabled(), "explicit setting wins over TTY")
}
