package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	blockedHits     int
	lastBlockStatus int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*upstreamStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamAttempt increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordUpstreamAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordUpstreamAttempt(endpoint, duration, err)
	}
}

// RecordBlocked tracks that an upstream response was classified as blocked.
func (r *Recorder) RecordBlocked(endpoint string, status int) {
	if r == nil {
		return
	}

	stats := r.ensureStats(endpoint)
	stats.blockedHits++
	stats.lastBlockStatus = status
	if r.otel != nil {
		r.otel.recordBlocked(endpoint, status)
	}
}

// UpstreamCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// BlockedHits returns the number of blocked responses seen for an endpoint.
func (r *Recorder) BlockedHits(endpoint string) int {
	return r.Snapshot(endpoint).BlockedHits
}

// LastCallLatency returns the last recorded latency for an endpoint call.
func (r *Recorder) LastCallLatency(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastCallLatency
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	BlockedHits     int
	LastBlockStatus int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(endpoint)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		BlockedHits:     stats.blockedHits,
		LastBlockStatus: stats.lastBlockStatus,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPrimerCycle tracks priming cycles and errors.
func (r *Recorder) RecordPrimerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPrimer(duration, err)
}

func (r *Recorder) ensureStats(endpoint string) *upstreamStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &upstreamStats{}
		r.stats[endpoint] = stats
	}
	return stats
}

func (r *Recorder) snapshot(endpoint string) upstreamStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[endpoint]; ok && stats != nil {
		return *stats
	}
	return upstreamStats{}
}
