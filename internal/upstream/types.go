package upstream

import "context"

// Request describes one outbound stats fetch. Empty fields fall back to the
// client's configured defaults.
type Request struct {
	Season     string
	SeasonType string
}

// Result is a classified upstream response ready for pass-through.
type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetcher is the surface handlers use to reach the upstream.
type Fetcher interface {
	FetchStats(ctx context.Context, req Request) (*Result, error)
}
