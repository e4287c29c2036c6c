// Package run provides subprocess execution for snipgen.
//
// This is a Tier 1 (Leaf) package: it imports only the standard library.
// Everything that shells out (the git status call in channel resolution,
// dart format in the generator) depends on the Runner interface rather than
// os/exec directly, so tests can substitute a scripted Stub.
package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Command describes one subprocess invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds extra KEY=value pairs appended to the parent environment.
	Env []string
}

// Result captures the outcome of a subprocess that started successfully.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes subprocesses. Run blocks until the subprocess exits;
// no deadline is imposed beyond whatever the caller puts on ctx.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner is the os/exec backed Runner used outside of tests.
type ExecRunner struct{}

// Run starts cmd and waits for it. A non-zero exit is reported through
// Result.ExitCode, not as an error; the error return covers failures to
// start the subprocess at all (missing binary, bad working directory).
func (ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return nil, fmt.Errorf("running %s: %w", cmd.Name, err)
	}
	return res, nil
}
