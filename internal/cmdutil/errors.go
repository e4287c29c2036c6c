package cmdutil

import (
	"errors"
	"fmt"
)

// FlagError indicates bad flags, arguments, or inputs that amount to a
// usage mistake. When Main() encounters this error type it prints the
// command's usage string after the error message and exits with the usage
// status.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf creates a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap wraps an existing error as a FlagError.
func FlagErrorWrap(err error) error {
	return &FlagError{err: err}
}

// SilentError signals that the error has already been displayed to the
// user. Main() exits non-zero without printing anything additional.
var SilentError = errors.New("SilentError")
