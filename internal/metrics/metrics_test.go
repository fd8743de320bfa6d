package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamAttempts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordUpstreamAttempt("leaguedashplayerstats", 120*time.Millisecond, nil)
	rec.RecordUpstreamAttempt("leaguedashplayerstats", 80*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("leaguedashplayerstats"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("leaguedashplayerstats"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("leaguedashplayerstats"); got != 80*time.Millisecond {
		t.Fatalf("expected last latency 80ms, got %v", got)
	}
}

func TestRecorderTracksBlockedResponses(t *testing.T) {
	rec := NewRecorder()

	rec.RecordBlocked("leaguedashplayerstats", 403)

	snap := rec.Snapshot("leaguedashplayerstats")
	if snap.BlockedHits != 1 {
		t.Fatalf("expected 1 blocked hit, got %d", snap.BlockedHits)
	}
	if snap.LastBlockStatus != 403 {
		t.Fatalf("expected last block status 403, got %d", snap.LastBlockStatus)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamAttempt("x", time.Second, nil)
	rec.RecordBlocked("x", 403)
	rec.RecordHTTPRequest("GET", "/stats", 200, time.Second)
	rec.RecordPrimerCycle(time.Second, nil)

	if got := rec.Snapshot("x"); got.Calls != 0 {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", got)
	}
}

func TestSnapshotUnknownEndpoint(t *testing.T) {
	rec := NewRecorder()
	if got := rec.Snapshot("unknown"); got != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", got)
	}
}
