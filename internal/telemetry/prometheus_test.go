package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wnspush/internal/render"
)

func scrape(t *testing.T, m *PrometheusMetrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPrometheusMetrics_RecordRender(t *testing.T) {
	m := NewPrometheusMetrics("WNSPush")

	m.RecordRender(context.Background(), "tile", render.ResultSuccess, time.Millisecond)
	m.RecordRender(context.Background(), "tile", render.ResultSuccess, time.Millisecond)
	m.RecordRender(context.Background(), "badge", render.ResultInvalid, time.Millisecond)

	out := scrape(t, m)
	assert.Contains(t, out, `wnspush_payloads_rendered_total{kind="tile",result="success"} 2`)
	assert.Contains(t, out, `wnspush_payloads_rendered_total{kind="badge",result="invalid"} 1`)
	assert.Contains(t, out, `wnspush_render_duration_seconds_count{kind="tile"} 2`)
}

func TestPrometheusMetrics_RecordRequest(t *testing.T) {
	m := NewPrometheusMetrics("wnspush")

	m.RecordRequest(http.MethodPost, "/v1/payloads/", "200", 5*time.Millisecond)

	out := scrape(t, m)
	assert.Contains(t, out, `wnspush_http_requests_total{method="POST",path="/v1/payloads/",status="200"} 1`)
	assert.Contains(t, out, `wnspush_http_request_duration_seconds_count{method="POST",path="/v1/payloads/",status="200"} 1`)
	assert.Contains(t, out, "go_goroutines")
}

func TestPrometheusMetrics_IndependentRegistries(t *testing.T) {
	a := NewPrometheusMetrics("wnspush")
	b := NewPrometheusMetrics("wnspush")

	a.RecordRender(context.Background(), "raw", render.ResultSuccess, 0)

	assert.NotContains(t, scrape(t, b), `kind="raw"`)
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestNopMetrics(t *testing.T) {
	var m NopMetrics
	assert.NotPanics(t, func() {
		m.RecordRender(context.Background(), "tile", render.ResultSuccess, time.Second)
		m.RecordRequest(http.MethodGet, "/health", "200", time.Second)
	})
}
