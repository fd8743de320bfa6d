package upstream

import (
	"context"
	"log/slog"
	"time"

	"github.com/arshi-singh/nba-stats-proxy/internal/logging"
	"github.com/arshi-singh/nba-stats-proxy/internal/metrics"
)

// instrumentedFetcher decorates a Fetcher with telemetry and logging.
type instrumentedFetcher struct {
	inner    Fetcher
	logger   *slog.Logger
	recorder *metrics.Recorder
	endpoint string
}

// NewInstrumentedFetcher wraps fetcher so every attempt is recorded and
// blocked responses are logged with their diagnostics.
func NewInstrumentedFetcher(inner Fetcher, logger *slog.Logger, recorder *metrics.Recorder) Fetcher {
	endpoint := statsEndpoint
	if named, ok := inner.(interface{ Endpoint() string }); ok {
		endpoint = named.Endpoint()
	}
	return &instrumentedFetcher{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		endpoint: endpoint,
	}
}

func (f *instrumentedFetcher) FetchStats(ctx context.Context, r Request) (*Result, error) {
	start := time.Now()
	res, err := f.inner.FetchStats(ctx, r)
	f.recorder.RecordUpstreamAttempt(f.endpoint, time.Since(start), err)

	if err == nil {
		return res, nil
	}

	logger := logging.FromContext(ctx, f.logger)
	if blocked, ok := AsBlockedError(err); ok {
		f.recorder.RecordBlocked(f.endpoint, blocked.StatusCode)
		logging.Warn(logger, "upstream blocked request",
			slog.String(logging.FieldUpstream, f.endpoint),
			slog.Int(logging.FieldStatusCode, blocked.StatusCode),
			slog.String("content_type", blocked.ContentType),
		)
		return nil, err
	}

	logging.Error(logger, "upstream fetch failed", err,
		slog.String(logging.FieldUpstream, f.endpoint),
	)
	return nil, err
}
