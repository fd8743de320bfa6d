package config

// Config holds runtime configuration for the proxy.
type Config struct {
	Port     string
	Upstream UpstreamConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Upstream: loadUpstream(),
		Metrics:  loadMetrics(),
	}
}
