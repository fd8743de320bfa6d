package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arshi-singh/nba-stats-proxy/internal/http/handlers"
)

// NewRouter registers the proxy routes.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/stats", handler.Stats)
	return r
}
