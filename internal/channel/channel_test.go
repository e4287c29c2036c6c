package channel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snipgen/internal/run"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestResolve_BranchOverride(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"master maps to main", "master", "main"},
		{"main", "main", "main"},
		{"stable", "stable", "stable"},
		{"surrounding whitespace trimmed", "  stable\n", "stable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &run.Stub{}
			r := &Resolver{
				Env:    envMap(map[string]string{"LUCI_BRANCH": tt.env}),
				Runner: stub,
			}
			got, err := r.Resolve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, stub.Calls, "override must not spawn a subprocess")
		})
	}
}

func TestResolve_UnrecognizedOverrideFallsThrough(t *testing.T) {
	stub := &run.Stub{}
	stub.QueueExit(0, "## dev\n", "")

	r := &Resolver{
		Env:    envMap(map[string]string{"LUCI_BRANCH": "beta"}),
		Runner: stub,
	}
	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dev", got)
	require.Len(t, stub.Calls, 1)
}

func TestResolve_GitStatus(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   string
	}{
		{"plain branch", "## main\n", "main"},
		{"tracking suffix stripped", "## release/3.22...origin/release/3.22\n", "release/3.22"},
		{"dirty tree lines ignored", "## feature-branch\n M lib/widgets.dart\n?? new.dart\n", "feature-branch"},
		{"unrecognized header", "On branch main\n", Unknown},
		{"empty output", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &run.Stub{}
			stub.QueueExit(0, tt.stdout, "")

			r := &Resolver{Env: envMap(nil), Runner: stub}
			got, err := r.Resolve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_SubprocessShape(t *testing.T) {
	stub := &run.Stub{}
	stub.QueueExit(0, "## main\n", "")

	r := &Resolver{
		Env:    envMap(map[string]string{"FLUTTER_ROOT": " /opt/flutter \n"}),
		Runner: stub,
	}
	_, err := r.Resolve(context.Background())
	require.NoError(t, err)

	require.Len(t, stub.Calls, 1)
	cmd := stub.Calls[0]
	assert.Equal(t, "git", cmd.Name)
	assert.Equal(t, []string{"status", "--porcelain", "--branch"}, cmd.Args)
	assert.Equal(t, "/opt/flutter", cmd.Dir, "FLUTTER_ROOT should be trimmed")
	assert.Contains(t, cmd.Env, "GIT_TRACE=2")
	assert.Contains(t, cmd.Env, "GIT_TRACE_SETUP=2")
}

func TestResolve_NoFlutterRootRunsInCwd(t *testing.T) {
	stub := &run.Stub{}
	stub.QueueExit(0, "## main\n", "")

	r := &Resolver{Env: envMap(nil), Runner: stub}
	_, err := r.Resolve(context.Background())
	require.NoError(t, err)

	require.Len(t, stub.Calls, 1)
	assert.Empty(t, stub.Calls[0].Dir)
}

func TestResolve_NonZeroExit(t *testing.T) {
	stub := &run.Stub{}
	stub.QueueExit(128, "partial out", "fatal: not a git repository")

	r := &Resolver{Env: envMap(nil), Runner: stub}
	_, err := r.Resolve(context.Background())

	var rerr *ResolutionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 128, rerr.ExitCode)
	assert.Equal(t, "partial out", rerr.Stdout)
	assert.Equal(t, "fatal: not a git repository", rerr.Stderr)
	assert.Contains(t, rerr.Error(), "128")
}

func TestResolveWithRetries_SucceedsAfterFailures(t *testing.T) {
	stub := &run.Stub{}
	stub.QueueExit(1, "", "transient")
	stub.QueueExit(1, "", "transient")
	stub.QueueExit(0, "## stable\n", "")

	r := &Resolver{Env: envMap(nil), Runner: stub}
	got, err := r.ResolveWithRetries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stable", got)
	assert.Len(t, stub.Calls, 3)
}

func TestResolveWithRetries_ExhaustsAttempts(t *testing.T) {
	stub := &run.Stub{}
	stub.QueueExit(1, "", "down")
	stub.QueueExit(1, "", "down")
	stub.QueueExit(1, "", "still down")

	r := &Resolver{Env: envMap(nil), Runner: stub}
	_, err := r.ResolveWithRetries(context.Background())

	var rerr *ResolutionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "still down", rerr.Stderr, "last failure should propagate")
	assert.Len(t, stub.Calls, 3)
}

func TestResolveWithRetries_StartFailureNotRetried(t *testing.T) {
	stub := &run.Stub{}
	stub.Queue(nil, assert.AnError)

	r := &Resolver{Env: envMap(nil), Runner: stub}
	_, err := r.ResolveWithRetries(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.Len(t, stub.Calls, 1, "non-subprocess failures are not retryable")
}
