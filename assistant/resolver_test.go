package assistant

import (
	"context"
	"testing"
	"time"

	"otter-agent/sources"

	"go.uber.org/zap"
)

func newTestResolver(deadline time.Duration, srcs ...sources.Source) *Resolver {
	logger, _ := zap.NewDevelopment()
	return NewResolver(srcs, deadline, logger)
}

func TestResolveFirstNonEmptyWins(t *testing.T) {
	fast := &fakeSource{name: "fast", text: "fast answer", label: "fast source", delay: 10 * time.Millisecond}
	slow := &fakeSource{name: "slow", text: "slow answer", label: "slow source", delay: 300 * time.Millisecond}
	r := newTestResolver(time.Second, slow, fast)

	answer, label := r.Resolve(context.Background(), "query")
	if answer != "fast answer" || label != "fast source" {
		t.Errorf("Resolve() = (%q, %q), want the faster source's result", answer, label)
	}
}

func TestResolveSkipsEmptyResults(t *testing.T) {
	empty := &fakeSource{name: "empty", delay: 5 * time.Millisecond}
	slow := &fakeSource{name: "slow", text: "slow answer", label: "slow source", delay: 50 * time.Millisecond}
	r := newTestResolver(time.Second, empty, slow)

	answer, label := r.Resolve(context.Background(), "query")
	if answer != "slow answer" || label != "slow source" {
		t.Errorf("Resolve() = (%q, %q), want the slower non-empty result", answer, label)
	}
}

func TestResolveWhitespaceCountsAsEmpty(t *testing.T) {
	blank := &fakeSource{name: "blank", text: "   \t ", label: "blank source", delay: 5 * time.Millisecond}
	real := &fakeSource{name: "real", text: "real answer", label: "real source", delay: 50 * time.Millisecond}
	r := newTestResolver(time.Second, blank, real)

	answer, label := r.Resolve(context.Background(), "query")
	if answer != "real answer" || label != "real source" {
		t.Errorf("Resolve() = (%q, %q), want the non-blank result", answer, label)
	}
}

func TestResolveDeadline(t *testing.T) {
	slow := &fakeSource{name: "slow", text: "too late", label: "slow source", delay: 2 * time.Second}
	other := &fakeSource{name: "other", text: "also late", label: "other source", delay: 2 * time.Second}
	r := newTestResolver(50*time.Millisecond, slow, other)

	start := time.Now()
	answer, label := r.Resolve(context.Background(), "query")
	elapsed := time.Since(start)

	if answer != "" || label != "" {
		t.Errorf("Resolve() = (%q, %q), want empty result on deadline", answer, label)
	}
	// Small scheduling tolerance on top of the 50ms deadline.
	if elapsed > 300*time.Millisecond {
		t.Errorf("Resolve() blocked %v past a 50ms deadline", elapsed)
	}
}

func TestResolveAllEmpty(t *testing.T) {
	r := newTestResolver(time.Second, &fakeSource{name: "a"}, &fakeSource{name: "b"})

	answer, label := r.Resolve(context.Background(), "query")
	if answer != "" || label != "" {
		t.Errorf("Resolve() = (%q, %q), want empty when every source is empty", answer, label)
	}
}

func TestResolveRespectsCallerContext(t *testing.T) {
	slow := &fakeSource{name: "slow", text: "too late", label: "slow source", delay: 2 * time.Second}
	r := newTestResolver(5*time.Second, slow)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	answer, _ := r.Resolve(ctx, "query")
	if answer != "" {
		t.Errorf("Resolve() = %q, want empty when caller context expires", answer)
	}
	if elapsed := time.Since(start); elapsed > 300*time.Millisecond {
		t.Errorf("Resolve() blocked %v past the caller's 30ms deadline", elapsed)
	}
}
