// Package iostreams provides testable access to the process IO streams.
// It follows the GitHub CLI pattern: commands write through an IOStreams
// value instead of touching os.Stdout directly, so tests can capture
// everything.
package iostreams

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams provides access to standard input/output/error streams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// TTY caches: -1 = unchecked, 0 = false, 1 = true.
	isInputTTY  int
	isOutputTTY int
	isStderrTTY int

	// colorEnabled: -1 = auto (from TTY), 0 = disabled, 1 = enabled.
	colorEnabled int
}

// System creates an IOStreams connected to the real process streams.
func System() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		isInputTTY:   -1,
		isOutputTTY:  -1,
		isStderrTTY:  -1,
		colorEnabled: -1,
	}
}

// IsInputTTY returns true if stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool {
	if s.isInputTTY == -1 {
		s.isInputTTY = detectTTY(s.In)
	}
	return s.isInputTTY == 1
}

// IsOutputTTY returns true if stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY == -1 {
		s.isOutputTTY = detectTTY(s.Out)
	}
	return s.isOutputTTY == 1
}

// IsStderrTTY returns true if stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	if s.isStderrTTY == -1 {
		s.isStderrTTY = detectTTY(s.ErrOut)
	}
	return s.isStderrTTY == 1
}

// ColorEnabled returns whether color output is enabled. In auto mode color
// follows stdout being a TTY.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		return s.IsOutputTTY()
	}
	return s.colorEnabled == 1
}

// SetColorEnabled explicitly enables or disables color output.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
}

// SetStdinTTY overrides stdin TTY detection, for tests.
func (s *IOStreams) SetStdinTTY(tty bool) { s.isInputTTY = boolToInt(tty) }

// SetStdoutTTY overrides stdout TTY detection, for tests.
func (s *IOStreams) SetStdoutTTY(tty bool) { s.isOutputTTY = boolToInt(tty) }

// SetStderrTTY overrides stderr TTY detection, for tests.
func (s *IOStreams) SetStderrTTY(tty bool) { s.isStderrTTY = boolToInt(tty) }

func detectTTY(stream any) int {
	if f, ok := stream.(*os.File); ok {
		return boolToInt(term.IsTerminal(int(f.Fd())))
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
