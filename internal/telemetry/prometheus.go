// Package telemetry provides the metrics backends for the payload service.
// Each backend records both render outcomes (render.Metrics) and HTTP
// request telemetry (core.MetricsCollector).
package telemetry

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wnspush/internal/core"
	"wnspush/internal/render"
)

var (
	_ render.Metrics        = (*PrometheusMetrics)(nil)
	_ core.MetricsCollector = (*PrometheusMetrics)(nil)
)

// PrometheusMetrics keeps its collectors on a private registry so that
// several instances (one per test) never collide.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	rendered      *prometheus.CounterVec
	renderLatency *prometheus.HistogramVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the collectors under the given namespace
// (lowercased), together with the Go runtime and process collectors.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	ns := strings.ToLower(namespace)
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		registry: reg,
		rendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "payloads_rendered_total",
			Help:      "Render attempts by notification kind and result.",
		}, []string{"kind", "result"}),
		renderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "render_duration_seconds",
			Help:      "Time spent validating and rendering a payload.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025},
		}, []string{"kind"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"path", "method", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method", "status"}),
	}
}

// RecordRender implements render.Metrics.
func (m *PrometheusMetrics) RecordRender(_ context.Context, kind, result string, duration time.Duration) {
	m.rendered.WithLabelValues(kind, result).Inc()
	m.renderLatency.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordRequest implements core.MetricsCollector.
func (m *PrometheusMetrics) RecordRequest(method, endpoint, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	m.httpDuration.WithLabelValues(endpoint, method, status).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for additional collectors.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}
