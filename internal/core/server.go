// Package core provides the HTTP chassis for the payload service. It builds a
// chi router with the cross-cutting concerns (panic recovery, request IDs,
// logging, metrics, timeouts and body limits) applied before requests reach
// the domain handlers registered by main.
package core

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"

	"wnspush/internal/config"
)

// MetricsCollector records API telemetry. The telemetry package provides
// Prometheus, CloudWatch and no-op implementations.
type MetricsCollector interface {
	// RecordRequest records latency and count for one request. endpoint is
	// the route pattern, not the raw path.
	RecordRequest(method, endpoint, status string, duration time.Duration)
}

// Server holds the chassis dependencies. Exported fields may be set between
// NewServer and MountRoutes.
type Server struct {
	Config    *config.Config
	Logger    *slog.Logger
	Validator *Validator
	Metrics   MetricsCollector

	// MetricsHandler is served at GET /metrics when non-nil.
	MetricsHandler http.Handler

	HealthProbes []HealthProbe

	// V1RouteRegistrars mount domain handlers under /v1. They are populated
	// by main so that core does not import handler packages.
	V1RouteRegistrars []func(chi.Router)

	router *chi.Mux
}

// NewServer validates the required dependencies and prepares an empty
// router. Call MountRoutes once all optional fields are set.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config:    cfg,
		Logger:    logger,
		Validator: NewValidator(logger),
		router:    chi.NewRouter(),
	}, nil
}

// Handler returns the root handler, gzip-wrapped when compression is enabled.
func (s *Server) Handler() http.Handler {
	if s.Config.Server.EnableGzip {
		return gzhttp.GzipHandler(s.router)
	}
	return s.router
}

// Router returns the underlying chi.Mux.
func (s *Server) Router() *chi.Mux {
	return s.router
}
