// Package main is the entry point for the payload API server.
//
// It loads configuration, builds the metrics backend selected by
// METRICS_BACKEND, wires the render service into the core chassis and serves
// HTTP until SIGINT or SIGTERM, then shuts down gracefully.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"wnspush/internal/api/handlers"
	"wnspush/internal/config"
	"wnspush/internal/core"
	"wnspush/internal/render"
	"wnspush/internal/telemetry"
	"wnspush/internal/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("wnspush API starting",
		"environment", cfg.Environment,
		"build", cfg.Build.String(),
		"port", cfg.Server.Port,
		"metrics_backend", cfg.Observability.MetricsBackend,
	)

	srv, err := buildServer(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return serve(ctx, srv, cfg, logger)
}

// metricsBackend is what every telemetry implementation provides.
type metricsBackend interface {
	render.Metrics
	core.MetricsCollector
}

// buildServer wires config, metrics, the render service and the handlers
// into a routed core.Server.
func buildServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*core.Server, error) {
	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	metrics, err := newMetrics(ctx, cfg, logger, srv)
	if err != nil {
		return nil, err
	}
	srv.Metrics = metrics

	renderer := render.NewService(srv.Validator, types.NewSlogAdapter(logger), metrics)
	payloads := handlers.NewPayloadHandler(renderer, logger)
	srv.V1RouteRegistrars = append(srv.V1RouteRegistrars, func(r chi.Router) {
		r.Route("/payloads", payloads.RegisterRoutes)
	})

	srv.MountRoutes()
	return srv, nil
}

// newMetrics builds the configured backend and attaches its /metrics handler
// or health probe to srv.
func newMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger, srv *core.Server) (metricsBackend, error) {
	obs := cfg.Observability

	switch obs.MetricsBackend {
	case config.MetricsBackendPrometheus:
		m := telemetry.NewPrometheusMetrics(obs.MetricNamespace)
		srv.MetricsHandler = m.Handler()
		return m, nil

	case config.MetricsBackendCloudWatch:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(obs.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		client := cloudwatch.NewFromConfig(awsCfg, func(o *cloudwatch.Options) {
			if obs.AWSEndpointURL != "" {
				o.BaseEndpoint = aws.String(obs.AWSEndpointURL)
			}
		})
		m := telemetry.NewCloudWatchMetrics(client, obs.MetricNamespace, types.NewSlogAdapter(logger))
		srv.HealthProbes = append(srv.HealthProbes, m)
		return m, nil

	default:
		return telemetry.NopMetrics{}, nil
	}
}

// serve runs the HTTP server until ctx is cancelled or the listener fails,
// then drains in-flight requests within the configured shutdown timeout.
func serve(ctx context.Context, srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a JSON slog.Logger for the given level name.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
