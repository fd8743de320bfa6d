package primer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/arshi-singh/nba-stats-proxy/internal/metrics"
)

type stubTarget struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubTarget) Prime(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubTarget) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestPrimerPrimesOnStartAndRepeats(t *testing.T) {
	target := &stubTarget{}
	p := New(target, nil, metrics.NewRecorder(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer func() {
		if err := p.Stop(context.Background()); err != nil {
			t.Fatalf("stop failed: %v", err)
		}
	}()

	waitFor(t, func() bool { return target.count() >= 2 })

	status := p.Status()
	if !status.IsReady() {
		t.Fatalf("expected ready status, got %+v", status)
	}
	if status.LastSuccess.IsZero() {
		t.Fatal("expected last success to be recorded")
	}
}

func TestPrimerTracksFailures(t *testing.T) {
	target := &stubTarget{err: errors.New("site unreachable")}
	p := New(target, nil, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	waitFor(t, func() bool { return p.Status().ConsecutiveFailures >= 1 })

	status := p.Status()
	if status.IsReady() {
		t.Fatal("expected not-ready status after failures")
	}
	if status.LastError != "site unreachable" {
		t.Fatalf("expected last error recorded, got %q", status.LastError)
	}
}

func TestPrimerStartIsIdempotent(t *testing.T) {
	target := &stubTarget{}
	p := New(target, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	waitFor(t, func() bool { return target.count() >= 1 })
	// A second Start must not spawn a second loop; with an hour-long
	// interval only the boot prime can have run.
	time.Sleep(20 * time.Millisecond)
	if got := target.count(); got != 1 {
		t.Fatalf("expected exactly 1 prime call, got %d", got)
	}
}

func TestPrimerStopTwice(t *testing.T) {
	p := New(&stubTarget{}, nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop failed: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}
}

func TestStatusReadiness(t *testing.T) {
	var s Status
	if s.IsReady() {
		t.Fatal("zero status must not be ready")
	}
	s.LastSuccess = time.Now()
	if !s.IsReady() {
		t.Fatal("expected ready after success")
	}
	s.ConsecutiveFailures = 3
	if s.IsReady() {
		t.Fatal("expected not ready after repeated failures")
	}
}
