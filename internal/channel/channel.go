// Package channel resolves the release-channel label attached to generated
// sample metadata.
//
// Resolution is layered: an explicit LUCI_BRANCH override wins, otherwise
// the current branch is read from a `git status` subprocess in porcelain
// branch mode. The status command is known to exit non-zero intermittently
// on CI for reasons unrelated to the input, so ResolveWithRetries wraps the
// subprocess path in a bounded retry.
package channel

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"snipgen/internal/logger"
	"snipgen/internal/run"
)

// Unknown is the label used when the status line has an unrecognized shape.
// This is a designed fallback, not an error.
const Unknown = "<unknown>"

const (
	branchEnv = "LUCI_BRANCH"
	rootEnv   = "FLUTTER_ROOT"
)

// branchRe matches the porcelain branch header, e.g. "## main" or
// "## release/branch...origin/release/branch".
var branchRe = regexp.MustCompile(`^## (?P<branch>.*)`)

// ResolutionError reports a status subprocess that exited non-zero.
type ResolutionError struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("git status exited with code %d\nstdout: %s\nstderr: %s",
		e.ExitCode, e.Stdout, e.Stderr)
}

// Resolver determines the release channel for one invocation.
type Resolver struct {
	// Env looks up environment variables, typically os.Getenv.
	Env func(string) string

	// Runner executes the git status subprocess.
	Runner run.Runner
}

// Resolve returns the channel label.
//
// An explicit LUCI_BRANCH of master, stable or main wins; "master" maps to
// "main" (the release track it names was renamed). Any other value falls
// through to the subprocess. The subprocess runs in FLUTTER_ROOT when that
// is set and non-empty, else the current directory. A branch header with a
// "...upstream" tracking suffix has the suffix stripped.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	switch strings.TrimSpace(r.Env(branchEnv)) {
	case "master", "main":
		return "main", nil
	case "stable":
		return "stable", nil
	}

	dir := strings.TrimSpace(r.Env(rootEnv))
	res, err := r.Runner.Run(ctx, run.Command{
		Name: "git",
		Args: []string{"status", "--porcelain", "--branch"},
		Dir:  dir,
		// Git tracing helps debug the intermittent failures; it only
		// affects stderr, which ends up in ResolutionError.
		Env: []string{"GIT_TRACE=2", "GIT_TRACE_SETUP=2"},
	})
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", &ResolutionError{ExitCode: res.ExitCode, Stdout: res.Stdout, Stderr: res.Stderr}
	}

	first, _, _ := strings.Cut(res.Stdout, "\n")
	m := branchRe.FindStringSubmatch(strings.TrimSpace(first))
	if m == nil {
		return Unknown, nil
	}
	branch := m[branchRe.SubexpIndex("branch")]
	branch, _, _ = strings.Cut(branch, "...")
	return branch, nil
}

// ResolveWithRetries resolves the channel, retrying failed status
// subprocesses up to two extra times. Each discarded failure is logged to
// the diagnostic stream; the final one propagates.
func (r *Resolver) ResolveWithRetries(ctx context.Context) (string, error) {
	var label string
	policy := RetryPolicy{
		MaxAttempts: 3,
		Retryable: func(err error) bool {
			var rerr *ResolutionError
			return errors.As(err, &rerr)
		},
		OnFailure: func(attempt int, err error) {
			logger.Warn().Err(err).Int("attempt", attempt).Msg("channel resolution failed, retrying")
		},
	}
	err := policy.Do(func() error {
		var err error
		label, err = r.Resolve(ctx)
		return err
	})
	return label, err
}
