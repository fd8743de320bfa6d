package config

import "time"

const (
	envPort         = "PORT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8080"
	defaultMetricsPort = "9090"
	// Conservative default timeout; the upstream is slow when it is deciding
	// whether to serve or block a request.
	defaultUpstreamTimeout = 10 * time.Second
	// How often the priming cookies are refreshed in the background. Upstream
	// anti-bot cookies are good for well over an hour; 15 minutes leaves margin.
	defaultPrimeInterval = 15 * time.Minute
)
