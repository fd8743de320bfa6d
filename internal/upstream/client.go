package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/arshi-singh/nba-stats-proxy/internal/headers"
	"github.com/arshi-singh/nba-stats-proxy/internal/timeutil"
)

// Config controls how the client reaches the stats upstream.
type Config struct {
	BaseURL           string
	SiteURL           string // priming target
	Headers           headers.Profile
	HTTPClient        *http.Client
	Timeout           time.Duration
	PrimingEnabled    bool
	DefaultSeason     string // empty means "derive from the clock"
	DefaultSeasonType string
}

// Client fetches stats from the upstream with spoofed browser headers and a
// shared priming cookie jar.
type Client struct {
	baseURL    string
	siteURL    string
	hdrs       headers.Profile
	httpClient httpDoer
	priming    bool
	season     string
	seasonType string
	now        func() time.Time

	primeMu sync.Mutex
	primed  bool
}

// NewClient constructs a stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	hdrs := cfg.Headers
	if hdrs == nil {
		hdrs = headers.Default()
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		siteURL:    normalizeSiteURL(cfg.SiteURL),
		hdrs:       hdrs,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		priming:    cfg.PrimingEnabled,
		season:     cfg.DefaultSeason,
		seasonType: resolveSeasonType(cfg.DefaultSeasonType),
		now:        time.Now,
	}
}

// Endpoint names the upstream resource this client fetches, for telemetry.
func (c *Client) Endpoint() string {
	return statsEndpoint
}

// Prime issues one GET against the site root so the upstream's anti-bot
// layer hands out session cookies. Cookies accumulate in the shared jar.
func (c *Client) Prime(ctx context.Context) error {
	c.primeMu.Lock()
	defer c.primeMu.Unlock()
	return c.primeLocked(ctx)
}

func (c *Client) primeLocked(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.siteURL, nil)
	if err != nil {
		return err
	}
	c.hdrs.Apply(req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("prime %s: %w", c.siteURL, err)
	}
	// Body content is irrelevant; only the Set-Cookie exchange matters.
	// Drain a little so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()

	c.primed = true
	return nil
}

// FetchStats forwards one stats request and classifies the response.
// Upstream JSON comes back unchanged, whatever its status code; anything
// else is reported as a BlockedError with a diagnostic snippet.
func (c *Client) FetchStats(ctx context.Context, r Request) (*Result, error) {
	c.ensurePrimed(ctx)

	req, err := c.buildRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isJSONResponse(contentType, body) {
		return nil, &BlockedError{
			Endpoint:    statsEndpoint,
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Snippet:     snippet(body),
		}
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, r Request) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+statsEndpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("Season", c.resolveSeason(r.Season))
	q.Set("SeasonType", c.resolveRequestSeasonType(r.SeasonType))
	for key, value := range fixedParams {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	c.hdrs.Apply(req.Header)
	return req, nil
}

func (c *Client) resolveSeason(season string) string {
	if season != "" {
		return season
	}
	if c.season != "" {
		return c.season
	}
	return timeutil.SeasonFor(c.now())
}

func (c *Client) resolveRequestSeasonType(seasonType string) string {
	if seasonType != "" {
		return seasonType
	}
	return c.seasonType
}

// ensurePrimed lazily primes the jar before the first fetch. A failed prime
// does not fail the fetch: the upstream often answers unprimed requests, and
// classification catches the blocked case either way.
func (c *Client) ensurePrimed(ctx context.Context) {
	if !c.priming {
		return
	}
	c.primeMu.Lock()
	defer c.primeMu.Unlock()
	if c.primed {
		return
	}
	_ = c.primeLocked(ctx)
}
