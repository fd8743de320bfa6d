package upstream

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

func jsonResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json; charset=utf-8")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

func htmlResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "text/html")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

func TestFetchStatsBuildsURLAndSpoofsHeaders(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"resultSets":[]}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://stats.example/stats",
		HTTPClient: &http.Client{Transport: rt},
	})

	res, err := client.FetchStats(context.Background(), Request{Season: "2023-24", SeasonType: "Playoffs"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/stats/"+statsEndpoint {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q, err := url.ParseQuery(captured.URL.RawQuery)
	if err != nil {
		t.Fatalf("failed parsing query: %v", err)
	}
	if q.Get("Season") != "2023-24" {
		t.Fatalf("expected Season=2023-24, got %s", q.Get("Season"))
	}
	if q.Get("SeasonType") != "Playoffs" {
		t.Fatalf("expected SeasonType=Playoffs, got %s", q.Get("SeasonType"))
	}
	if q.Get("LeagueID") != "00" || q.Get("PerMode") != "PerGame" {
		t.Fatalf("expected fixed parameter block, got %s", captured.URL.RawQuery)
	}

	ua := captured.Header.Get("User-Agent")
	if !strings.Contains(ua, "Mozilla/5.0") {
		t.Fatalf("expected spoofed user agent, got %q", ua)
	}
	if captured.Header.Get("x-nba-stats-origin") != "stats" {
		t.Fatal("expected stats origin header on upstream request")
	}
	if captured.Header.Get("Referer") == "" {
		t.Fatal("expected Referer header on upstream request")
	}

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if string(res.Body) != `{"resultSets":[]}` {
		t.Fatalf("expected body passed through unchanged, got %s", res.Body)
	}
}

func TestFetchStatsDefaultsSeasonFromClock(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://stats.example",
		HTTPClient: &http.Client{Transport: rt},
	})
	client.now = func() time.Time { return time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC) }

	if _, err := client.FetchStats(context.Background(), Request{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	q := captured.URL.Query()
	if q.Get("Season") != "2025-26" {
		t.Fatalf("expected clock-derived season 2025-26, got %s", q.Get("Season"))
	}
	if q.Get("SeasonType") != "Regular Season" {
		t.Fatalf("expected default season type, got %s", q.Get("SeasonType"))
	}
}

func TestFetchStatsConfiguredDefaultsWin(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	client := NewClient(Config{
		BaseURL:           "http://stats.example",
		HTTPClient:        &http.Client{Transport: rt},
		DefaultSeason:     "2019-20",
		DefaultSeasonType: "Pre Season",
	})

	if _, err := client.FetchStats(context.Background(), Request{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	q := captured.URL.Query()
	if q.Get("Season") != "2019-20" {
		t.Fatalf("expected configured season, got %s", q.Get("Season"))
	}
	if q.Get("SeasonType") != "Pre Season" {
		t.Fatalf("expected configured season type, got %s", q.Get("SeasonType"))
	}
}

func TestFetchStatsPrimesOnceBeforeFirstFetch(t *testing.T) {
	var calls []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls = append(calls, req.URL.Host+req.URL.Path)
		if req.URL.Host == "site.example" {
			return htmlResponse(http.StatusOK, "<html>home</html>"), nil
		}
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	client := NewClient(Config{
		BaseURL:        "http://stats.example/stats",
		SiteURL:        "http://site.example/",
		HTTPClient:     &http.Client{Transport: rt},
		PrimingEnabled: true,
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchStats(context.Background(), Request{Season: "2023-24"}); err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
	}

	if len(calls) != 3 {
		t.Fatalf("expected 3 upstream calls (1 prime + 2 fetches), got %d: %v", len(calls), calls)
	}
	if calls[0] != "site.example/" {
		t.Fatalf("expected priming call first, got %s", calls[0])
	}
	if calls[1] == calls[0] || calls[2] == calls[0] {
		t.Fatal("expected no further priming calls after the first")
	}
}

func TestFetchStatsSkipsPrimingWhenDisabled(t *testing.T) {
	var calls int
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		if req.URL.Host != "stats.example" {
			t.Fatalf("unexpected host %s", req.URL.Host)
		}
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://stats.example",
		SiteURL:    "http://site.example/",
		HTTPClient: &http.Client{Transport: rt},
	})

	if _, err := client.FetchStats(context.Background(), Request{Season: "2023-24"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestFetchStatsBlockedHTML(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return htmlResponse(http.StatusForbidden, "<html><body>Access Denied</body></html>"), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://stats.example",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchStats(context.Background(), Request{Season: "2023-24"})
	blocked, ok := AsBlockedError(err)
	if !ok {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if blocked.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", blocked.StatusCode)
	}
	if !strings.Contains(blocked.Snippet, "Access Denied") {
		t.Fatalf("expected diagnostic snippet, got %q", blocked.Snippet)
	}
}

func TestFetchStatsEmptyBodyIsBlocked(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, ""), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://stats.example",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchStats(context.Background(), Request{Season: "2023-24"})
	if _, ok := AsBlockedError(err); !ok {
		t.Fatalf("expected BlockedError for empty body, got %v", err)
	}
}

func TestFetchStatsUpstreamJSONErrorPassesThrough(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"error":"Season is required"}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://stats.example",
		HTTPClient: &http.Client{Transport: rt},
	})

	res, err := client.FetchStats(context.Background(), Request{Season: "bogus"})
	if err != nil {
		t.Fatalf("expected JSON error body to pass through, got %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected upstream status preserved, got %d", res.StatusCode)
	}
	if string(res.Body) != `{"error":"Season is required"}` {
		t.Fatalf("expected body preserved, got %s", res.Body)
	}
}

func TestPrimeReportsTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	client := NewClient(Config{
		SiteURL:    "http://site.example/",
		HTTPClient: &http.Client{Transport: rt},
	})

	if err := client.Prime(context.Background()); err == nil {
		t.Fatal("expected error from failed prime")
	}
}
