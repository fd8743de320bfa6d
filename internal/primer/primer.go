package primer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/arshi-singh/nba-stats-proxy/internal/logging"
	"github.com/arshi-singh/nba-stats-proxy/internal/metrics"
)

const defaultInterval = 15 * time.Minute

// Target is anything that can refresh the priming cookie jar.
type Target interface {
	Prime(ctx context.Context) error
}

// Primer re-primes the upstream cookie jar on an interval so proxied
// requests rarely hit the anti-bot layer cold.
type Primer struct {
	target   Target
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the priming loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether priming has succeeded recently and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Primer with sane defaults.
func New(target Target, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Primer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Primer{
		target:   target,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins priming until the context is cancelled or Stop is called.
func (p *Primer) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "primer started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial prime to warm the jar on boot.
		p.primeOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "primer stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "primer stopped")
				return
			case <-p.ticker.C:
				p.primeOnce(ctx)
			}
		}
	}()
}

// Stop halts the priming loop.
func (p *Primer) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Primer) primeOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	err := p.target.Prime(ctx)
	if p.metrics != nil {
		p.metrics.RecordPrimerCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(p.logger, "primer refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "primer refreshed cookies",
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Primer) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Primer) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Primer) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Primer) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the primer's recent health.
func (p *Primer) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
