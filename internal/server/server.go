package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/arshi-singh/nba-stats-proxy/internal/config"
	"github.com/arshi-singh/nba-stats-proxy/internal/headers"
	httpserver "github.com/arshi-singh/nba-stats-proxy/internal/http"
	"github.com/arshi-singh/nba-stats-proxy/internal/http/handlers"
	"github.com/arshi-singh/nba-stats-proxy/internal/http/middleware"
	"github.com/arshi-singh/nba-stats-proxy/internal/logging"
	"github.com/arshi-singh/nba-stats-proxy/internal/metrics"
	"github.com/arshi-singh/nba-stats-proxy/internal/primer"
	"github.com/arshi-singh/nba-stats-proxy/internal/upstream"
)

var metricsSetup = metrics.Setup

// cookiePrimer abstracts the background primer so tests can inject stubs.
type cookiePrimer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() primer.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	client        *upstream.Client
	httpServer    httpServer
	metricsServer httpServer
	primer        cookiePrimer
	metricsStop   func(context.Context) error
}

// New constructs a server with default upstream client and primer wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	profile, err := headers.LoadFile(cfg.Upstream.HeaderProfileFile)
	if err != nil {
		logging.Warn(logger, "header profile load failed, using defaults",
			"error", err, "file", cfg.Upstream.HeaderProfileFile)
		profile = headers.Default()
	}

	client := upstream.NewClient(upstream.Config{
		BaseURL:           cfg.Upstream.BaseURL,
		SiteURL:           cfg.Upstream.SiteURL,
		Headers:           profile,
		Timeout:           cfg.Upstream.Timeout,
		PrimingEnabled:    cfg.Upstream.PrimingEnabled,
		DefaultSeason:     cfg.Upstream.DefaultSeason,
		DefaultSeasonType: cfg.Upstream.DefaultSeasonType,
	})
	fetcher := upstream.NewInstrumentedFetcher(client, logger, recorder)

	var prm cookiePrimer
	var statusFn func() primer.Status
	if cfg.Upstream.PrimingEnabled {
		p := primer.New(client, logger, recorder, cfg.Upstream.PrimeInterval)
		prm = p
		statusFn = p.Status
	}

	httpSrv := buildHTTPServer(cfg, fetcher, logger, recorder, statusFn)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		client:        client,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		primer:        prm,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, prm cookiePrimer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		primer:     prm,
	}
}

func buildHTTPServer(cfg config.Config, fetcher upstream.Fetcher, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() primer.Status) httpServer {
	handler := handlers.NewHandler(fetcher, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger()
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the primer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.primer != nil {
		s.primer.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.primer != nil {
		if err := s.primer.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop primer", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
