package session

import (
	"context"
	"sync"

	"sitecheck/internal/checker"
)

// Phase is where the check workflow currently stands.
type Phase string

const (
	Idle     Phase = "idle"
	Checking Phase = "checking"
	Done     Phase = "done"
)

// State is a point-in-time view of the session.
type State struct {
	Phase  Phase
	Input  string
	Result *checker.Result
}

// Session owns the mutable state of the check workflow: the current input,
// whether a check is in flight, and the last result. A fresh result fully
// replaces the previous one; no history is kept.
type Session struct {
	mu      sync.Mutex
	checker checker.Checker
	phase   Phase
	input   string
	last    *checker.Result
}

func New(c checker.Checker) *Session {
	return &Session{checker: c, phase: Idle}
}

// Check runs one connectivity check. The lock is not held across the
// network call, so overlapping invocations stay independent and whichever
// finishes last is what Snapshot reports afterwards.
func (s *Session) Check(ctx context.Context, input string) checker.Result {
	s.mu.Lock()
	s.phase = Checking
	s.input = input
	s.mu.Unlock()

	res := s.checker.Check(ctx, input)

	s.mu.Lock()
	s.phase = Done
	s.last = &res
	s.mu.Unlock()
	return res
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	var r *checker.Result
	if s.last != nil {
		cp := *s.last
		r = &cp
	}
	return State{Phase: s.phase, Input: s.input, Result: r}
}
