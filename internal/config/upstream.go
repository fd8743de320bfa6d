package config

import "time"

const (
	envUpstreamBaseURL   = "UPSTREAM_BASE_URL"
	envUpstreamSiteURL   = "UPSTREAM_SITE_URL"
	envUpstreamTimeout   = "UPSTREAM_TIMEOUT"
	envDefaultSeason     = "DEFAULT_SEASON"
	envDefaultSeasonType = "DEFAULT_SEASON_TYPE"
	envPrimingEnabled    = "PRIMING_ENABLED"
	envPrimeInterval     = "PRIME_INTERVAL"
	envHeaderProfile     = "HEADER_PROFILE_FILE"

	defaultUpstreamBaseURL = "https://stats.nba.com/stats"
	defaultUpstreamSiteURL = "https://www.nba.com/"
	defaultSeasonType      = "Regular Season"
)

// UpstreamConfig controls how we talk to the stats upstream.
type UpstreamConfig struct {
	BaseURL           string
	SiteURL           string // priming target
	Timeout           time.Duration
	DefaultSeason     string // empty means "derive from the clock"
	DefaultSeasonType string
	PrimingEnabled    bool
	PrimeInterval     time.Duration
	HeaderProfileFile string // optional YAML override of the spoofed headers
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		BaseURL:           envOrDefault(envUpstreamBaseURL, defaultUpstreamBaseURL),
		SiteURL:           envOrDefault(envUpstreamSiteURL, defaultUpstreamSiteURL),
		Timeout:           durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		DefaultSeason:     envOrDefault(envDefaultSeason, ""),
		DefaultSeasonType: envOrDefault(envDefaultSeasonType, defaultSeasonType),
		PrimingEnabled:    boolEnvOrDefault(envPrimingEnabled, true),
		PrimeInterval:     durationEnvOrDefault(envPrimeInterval, defaultPrimeInterval),
		HeaderProfileFile: envOrDefault(envHeaderProfile, ""),
	}
}
