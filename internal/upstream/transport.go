package upstream

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns the caller's client or a default one, ensuring a
// cookie jar is present so priming cookies survive across requests.
func resolveHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client == nil {
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	if client.Jar == nil {
		if jar, err := cookiejar.New(nil); err == nil {
			client.Jar = jar
		}
	}
	return client
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func normalizeSiteURL(raw string) string {
	if raw == "" {
		return defaultSiteURL
	}
	return raw
}

func resolveSeasonType(seasonType string) string {
	if seasonType == "" {
		return defaultSeasonType
	}
	return seasonType
}
