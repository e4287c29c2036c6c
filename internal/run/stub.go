package run

import (
	"context"
	"fmt"
	"sync"
)

// Stub is a scripted Runner for tests. Queue results in the order the code
// under test is expected to run commands; every call records the Command it
// received in Calls.
type Stub struct {
	mu    sync.Mutex
	next  int
	queue []stubResult
	Calls []Command
}

type stubResult struct {
	res *Result
	err error
}

// Queue appends a result for the next unconsumed Run call.
func (s *Stub) Queue(res *Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, stubResult{res: res, err: err})
}

// QueueExit is shorthand for queueing a plain exit with captured output.
func (s *Stub) QueueExit(code int, stdout, stderr string) {
	s.Queue(&Result{Stdout: stdout, Stderr: stderr, ExitCode: code}, nil)
}

// Run returns the next queued result. Running past the end of the script
// fails rather than blocking or repeating, so tests catch extra calls.
func (s *Stub) Run(_ context.Context, cmd Command) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, cmd)
	if s.next >= len(s.queue) {
		return nil, fmt.Errorf("run stub: unexpected command %s %v", cmd.Name, cmd.Args)
	}
	r := s.queue[s.next]
	s.next++
	return r.res, r.err
}
