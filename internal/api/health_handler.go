package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves GET /health.
type HealthHandler struct {
	database Pinger
	cache    Pinger
	logger   *slog.Logger
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is
// disabled.
func NewHealthHandler(database, cache Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		database: database,
		cache:    cache,
		logger:   logger.With(slog.String("component", "health_handler")),
	}
}

// Check responds 200 when the database answers a ping and 503 otherwise.
// The cache state is reported but never fails the check.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}
	status := http.StatusOK

	if err := h.database.Ping(ctx); err != nil {
		log.Error("database health check failed", slog.String("error", err.Error()))
		resp.Status = "unavailable"
		resp.Database = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			log.Warn("cache health check failed", slog.String("error", err.Error()))
			resp.Cache = "unavailable"
		}
	}

	shared.RespondWithJSON(w, r, status, resp)
}
