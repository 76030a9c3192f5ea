package telemetry

import (
	"context"
	"time"
)

// NopMetrics discards everything. Used when METRICS_BACKEND=none.
type NopMetrics struct{}

func (NopMetrics) RecordRender(context.Context, string, string, time.Duration) {}

func (NopMetrics) RecordRequest(string, string, string, time.Duration) {}
