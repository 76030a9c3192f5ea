package core

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"wnspush/internal/config"
)

type recordedRequest struct {
	method, endpoint, status string
	duration                 time.Duration
}

type mockMetricsCollector struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (m *mockMetricsCollector) RecordRequest(method, endpoint, status string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, recordedRequest{method, endpoint, status, duration})
}

func (m *mockMetricsCollector) recorded() []recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]recordedRequest(nil), m.requests...)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "local",
		Server: config.ServerConfig{
			RequestTimeout:     time.Second,
			MaxBodyBytes:       1024,
			CorsAllowedOrigins: []string{"*"},
		},
		Build: config.BuildInfo{Version: "test"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bufferLogger returns a JSON logger writing into the returned buffer.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(testConfig(), discardLogger())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return srv
}
