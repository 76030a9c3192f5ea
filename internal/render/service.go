// Package render turns wire-format render requests into WNS payloads. It is
// the caller of the wns payload builder shared by the HTTP API and the CLI:
// it validates the request, builds the notification, produces the body and
// the delivery headers, and reports the outcome to logs and metrics.
package render

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wnspush/internal/notifications/wns"
	"wnspush/internal/types"
)

// Render outcomes reported to Metrics.
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

// StructValidator validates tagged structs. core.Validator implements it.
type StructValidator interface {
	ValidateStruct(s any) error
}

// Metrics records render outcomes. Implementations must not block.
type Metrics interface {
	RecordRender(ctx context.Context, kind string, result string, duration time.Duration)
}

// Result is a rendered notification ready for the transport.
type Result struct {
	Kind        string            `json:"kind"`
	ContentType string            `json:"content_type"`
	Headers     map[string]string `json:"headers"`
	Payload     string            `json:"payload"`
}

// Service renders requests.
type Service struct {
	validator StructValidator
	logger    types.Logger
	metrics   Metrics
	clock     types.Clock
}

// NewService creates a Service. A nil metrics disables metric recording.
func NewService(v StructValidator, logger types.Logger, metrics Metrics) *Service {
	return &Service{
		validator: v,
		logger:    logger,
		metrics:   metrics,
		clock:     types.RealClock{},
	}
}

// SetClock overrides the clock for testing.
func (s *Service) SetClock(c types.Clock) {
	s.clock = c
}

// Render validates req and produces the payload and delivery headers.
//
// Errors are *types.AppError: validation_* for malformed requests and
// invalid_state_* when the payload builder rejects the content (for example
// a badge with neither a number nor a glyph).
func (s *Service) Render(ctx context.Context, req *Request) (*Result, error) {
	start := s.clock.Now()
	logger := s.loggerFor(ctx)

	if req == nil {
		return nil, types.NewAppError(types.ErrCodeValidationInvalidRequest, "request is empty", nil)
	}

	if s.validator != nil {
		if err := s.validator.ValidateStruct(req); err != nil {
			s.record(ctx, req.Kind, ResultInvalid, start)
			logger.Warn("render request rejected", "kind", req.Kind, "error", err.Error())
			return nil, err
		}
	}

	n, err := req.ToNotification()
	if err != nil {
		s.record(ctx, req.Kind, ResultInvalid, start)
		logger.Warn("render request rejected", "kind", req.Kind, "error", err.Error())
		return nil, err
	}

	payload, err := n.Payload()
	if err != nil {
		s.record(ctx, n.Kind().String(), classify(err), start)
		logger.Warn("payload rejected", "kind", n.Kind().String(), "error", err.Error())
		return nil, err
	}

	headers := wns.DeliveryHeaders(n)
	result := &Result{
		Kind:        n.Kind().String(),
		ContentType: headers.Get(wns.HeaderContentType),
		Headers:     flatten(headers),
		Payload:     payload,
	}

	s.record(ctx, result.Kind, ResultSuccess, start)
	logger.Info("payload rendered",
		"kind", result.Kind,
		"payload_bytes", len(payload),
	)

	return result, nil
}

func (s *Service) loggerFor(ctx context.Context) types.Logger {
	if l := types.LoggerFromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

func (s *Service) record(ctx context.Context, kind, result string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordRender(ctx, kind, result, s.clock.Now().Sub(start))
}

// classify maps a payload error onto a metric result: caller misuse is
// "invalid", anything else "failed".
func classify(err error) string {
	var appErr *types.AppError
	if errors.As(err, &appErr) && !appErr.Code.Retryable() {
		return ResultInvalid
	}
	return ResultFailed
}

// flatten keys the headers by their documented WNS spelling rather than
// the canonical MIME form http.Header uses.
func flatten(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for _, name := range wns.DeliveryHeaderNames {
		if v := h.Get(name); v != "" {
			out[name] = v
		}
	}
	return out
}
