package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/arshi-singh/nba-stats-proxy/internal/http/middleware"
	"github.com/arshi-singh/nba-stats-proxy/internal/logging"
	"github.com/arshi-singh/nba-stats-proxy/internal/primer"
	"github.com/arshi-singh/nba-stats-proxy/internal/upstream"
)

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

var allowedSeasonTypes = map[string]struct{}{
	"Regular Season": {},
	"Pre Season":     {},
	"Playoffs":       {},
	"All Star":       {},
}

// Handler wires HTTP routes to the upstream fetcher.
type Handler struct {
	fetcher  upstream.Fetcher
	logger   *slog.Logger
	statusFn func() primer.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no primer runs,
// in which case /ready always reports ready.
func NewHandler(fetcher upstream.Fetcher, logger *slog.Logger, statusFn func() primer.Status) *Handler {
	return &Handler{
		fetcher:  fetcher,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on priming health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Stats forwards one stats request upstream and passes the JSON back
// unchanged, or reports a diagnostic when the upstream blocked us.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	seasonType := r.URL.Query().Get("season_type")

	if season != "" && !validSeason(season) {
		writeError(w, r, http.StatusBadRequest, "invalid season format (expected YYYY-YY, e.g. 2025-26)", h.logger)
		return
	}
	if seasonType != "" {
		if _, ok := allowedSeasonTypes[seasonType]; !ok {
			writeError(w, r, http.StatusBadRequest, "invalid season_type (expected Regular Season, Pre Season, Playoffs, or All Star)", h.logger)
			return
		}
	}

	logger := loggerFromContext(r, h.logger)
	res, err := h.fetcher.FetchStats(r.Context(), upstream.Request{
		Season:     season,
		SeasonType: seasonType,
	})
	if err != nil {
		if blocked, ok := upstream.AsBlockedError(err); ok {
			h.writeBlocked(w, r, blocked)
			return
		}
		writeError(w, r, http.StatusBadGateway, "upstream unreachable", h.logger)
		return
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(res.Body); err != nil {
		logging.Error(logger, "failed to write proxied body", err)
		return
	}
	logging.Info(logger, "proxied stats response",
		slog.String(logging.FieldSeason, season),
		slog.String(logging.FieldSeasonType, seasonType),
		slog.Int(logging.FieldStatusCode, res.StatusCode),
		slog.Int("bytes", len(res.Body)),
	)
}

func (h *Handler) writeBlocked(w http.ResponseWriter, r *http.Request, blocked *upstream.BlockedError) {
	body := map[string]string{
		"error":          "upstream blocked request",
		"upstreamStatus": strconv.Itoa(blocked.StatusCode),
		"snippet":        blocked.Snippet,
	}
	if reqID := middleware.RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, http.StatusBadGateway, body, h.logger)
}

// validSeason accepts labels like 2025-26 where the suffix is the next year.
func validSeason(season string) bool {
	match := seasonPattern.FindStringSubmatch(season)
	if match == nil {
		return false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return false
	}
	suffix, err := strconv.Atoi(match[2])
	if err != nil {
		return false
	}
	return (year+1)%100 == suffix
}
