package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/sony/gobreaker/v2"

	"wnspush/internal/core"
	"wnspush/internal/render"
	"wnspush/internal/types"
)

var (
	_ render.Metrics        = (*CloudWatchMetrics)(nil)
	_ core.MetricsCollector = (*CloudWatchMetrics)(nil)
	_ core.HealthProbe      = (*CloudWatchMetrics)(nil)
)

// publishTimeout bounds a single PutMetricData call.
const publishTimeout = 2 * time.Second

// ErrPublisherUnavailable is reported by Check while the breaker is open.
var ErrPublisherUnavailable = errors.New("cloudwatch circuit breaker is open")

// CloudWatchClient abstracts PutMetricData for testability.
type CloudWatchClient interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// CloudWatchMetrics publishes metrics with PutMetricData. Calls go through a
// circuit breaker: after repeated failures the publisher drops data points
// without calling CloudWatch until the breaker half-opens. Publish errors are
// logged and never returned to the caller.
//
// Metrics emitted:
//   - PayloadRendered: Dims {Kind, Result}
//   - RenderLatency: Dims {Kind}, milliseconds
//   - APIRequestCount: Dims {Method, Endpoint, Status}
//   - APILatency: Dims {Method, Endpoint}, milliseconds
type CloudWatchMetrics struct {
	client    CloudWatchClient
	namespace string
	logger    types.Logger
	breaker   *gobreaker.CircuitBreaker[struct{}]
}

// NewCloudWatchMetrics creates a publisher for namespace. An empty namespace
// selects types.MetricNamespace.
func NewCloudWatchMetrics(client CloudWatchClient, namespace string, logger types.Logger) *CloudWatchMetrics {
	if namespace == "" {
		namespace = types.MetricNamespace
	}

	m := &CloudWatchMetrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
	m.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "cloudwatch-metrics",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("metrics circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	return m
}

// RecordRender implements render.Metrics.
func (m *CloudWatchMetrics) RecordRender(ctx context.Context, kind, result string, duration time.Duration) {
	m.publish(ctx, []cwtypes.MetricDatum{
		{
			MetricName: aws.String(types.MetricPayloadRendered),
			Value:      aws.Float64(1),
			Unit:       cwtypes.StandardUnitCount,
			Dimensions: []cwtypes.Dimension{
				{Name: aws.String(types.DimKind), Value: aws.String(kind)},
				{Name: aws.String(types.DimResult), Value: aws.String(result)},
			},
		},
		{
			MetricName: aws.String(types.MetricRenderLatency),
			Value:      aws.Float64(milliseconds(duration)),
			Unit:       cwtypes.StandardUnitMilliseconds,
			Dimensions: []cwtypes.Dimension{
				{Name: aws.String(types.DimKind), Value: aws.String(kind)},
			},
		},
	}, "kind", kind, "result", result)
}

// RecordRequest implements core.MetricsCollector.
func (m *CloudWatchMetrics) RecordRequest(method, endpoint, status string, duration time.Duration) {
	m.publish(context.Background(), []cwtypes.MetricDatum{
		{
			MetricName: aws.String(types.MetricAPIRequestCount),
			Value:      aws.Float64(1),
			Unit:       cwtypes.StandardUnitCount,
			Dimensions: []cwtypes.Dimension{
				{Name: aws.String(types.DimMethod), Value: aws.String(method)},
				{Name: aws.String(types.DimEndpoint), Value: aws.String(endpoint)},
				{Name: aws.String(types.DimStatus), Value: aws.String(status)},
			},
		},
		{
			MetricName: aws.String(types.MetricAPILatency),
			Value:      aws.Float64(milliseconds(duration)),
			Unit:       cwtypes.StandardUnitMilliseconds,
			Dimensions: []cwtypes.Dimension{
				{Name: aws.String(types.DimMethod), Value: aws.String(method)},
				{Name: aws.String(types.DimEndpoint), Value: aws.String(endpoint)},
			},
		},
	}, "method", method, "endpoint", endpoint, "status", status)
}

// Name implements core.HealthProbe.
func (m *CloudWatchMetrics) Name() string {
	return "cloudwatch"
}

// Check implements core.HealthProbe. It does not call CloudWatch; it only
// reports whether the breaker is letting data points through.
func (m *CloudWatchMetrics) Check(context.Context) error {
	if m.breaker.State() == gobreaker.StateOpen {
		return ErrPublisherUnavailable
	}
	return nil
}

func (m *CloudWatchMetrics) publish(ctx context.Context, data []cwtypes.MetricDatum, logArgs ...any) {
	// Request cancellation must not drop the data point.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	_, err := m.breaker.Execute(func() (struct{}, error) {
		_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(m.namespace),
			MetricData: data,
		})
		return struct{}{}, err
	})
	if err == nil || errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return
	}

	m.logger.Error("failed to publish metric",
		append([]any{"error", err.Error(), "metric", aws.ToString(data[0].MetricName)}, logArgs...)...,
	)
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
