package session

import (
	"context"
	"testing"
	"time"

	"sitecheck/internal/checker"
)

// fake checker you can control
type fakeChecker struct {
	results []checker.Result
	i       int
	block   chan struct{} // when set, Check waits on it
}

func (f *fakeChecker) Check(ctx context.Context, input string) checker.Result {
	if f.block != nil {
		<-f.block
	}
	if f.i >= len(f.results) {
		return checker.Result{Message: "no more"}
	}
	r := f.results[f.i]
	f.i++
	return r
}

func TestSession_StartsIdle(t *testing.T) {
	s := New(&fakeChecker{})
	st := s.Snapshot()
	if st.Phase != Idle {
		t.Fatalf("want idle, got %q", st.Phase)
	}
	if st.Result != nil {
		t.Fatalf("want no result, got %+v", st.Result)
	}
}

func TestSession_CheckTransitionsToDone(t *testing.T) {
	f := &fakeChecker{
		results: []checker.Result{
			{Status: 200, Success: true, Message: "OK", ResponseTimeMS: 12.5},
		},
	}
	s := New(f)

	out := s.Check(context.Background(), "https://example.com")
	if !out.Success || out.Status != 200 {
		t.Fatalf("unexpected result %+v", out)
	}

	st := s.Snapshot()
	if st.Phase != Done {
		t.Fatalf("want done, got %q", st.Phase)
	}
	if st.Input != "https://example.com" {
		t.Fatalf("want input retained, got %q", st.Input)
	}
	if st.Result == nil || st.Result.Status != 200 {
		t.Fatalf("want stored result, got %+v", st.Result)
	}
}

func TestSession_FreshResultReplacesPrior(t *testing.T) {
	f := &fakeChecker{
		results: []checker.Result{
			{Status: 200, Success: true, Message: "OK", ResponseTimeMS: 10},
			{Status: 404, Success: false, Message: "Not Found", ResponseTimeMS: 20},
		},
	}
	s := New(f)

	s.Check(context.Background(), "https://example.com")
	s.Check(context.Background(), "https://example.com/missing")

	st := s.Snapshot()
	if st.Result == nil || st.Result.Status != 404 {
		t.Fatalf("want latest result to win, got %+v", st.Result)
	}
	if st.Input != "https://example.com/missing" {
		t.Fatalf("want latest input, got %q", st.Input)
	}
}

func TestSession_CheckingVisibleWhileInFlight(t *testing.T) {
	f := &fakeChecker{
		results: []checker.Result{{Status: 200, Success: true, Message: "OK"}},
		block:   make(chan struct{}),
	}
	s := New(f)

	done := make(chan struct{})
	go func() {
		s.Check(context.Background(), "https://example.com")
		close(done)
	}()

	deadline := time.After(time.Second)
	for s.Snapshot().Phase != Checking {
		select {
		case <-deadline:
			t.Fatal("never observed checking phase")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	close(f.block)
	<-done
	if st := s.Snapshot(); st.Phase != Done {
		t.Fatalf("want done after completion, got %q", st.Phase)
	}
}
