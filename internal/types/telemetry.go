package types

// Telemetry metric names. All components MUST use these constants.
const (
	// Metric Names
	MetricPayloadRendered = "PayloadRendered"
	MetricRenderLatency   = "RenderLatency"
	MetricAPILatency      = "APILatency"
	MetricAPIRequestCount = "APIRequestCount"

	// Dimension Keys
	DimKind     = "Kind"
	DimResult   = "Result"
	DimMethod   = "Method"
	DimEndpoint = "Endpoint"
	DimStatus   = "Status"

	// Metric Namespace
	MetricNamespace = "WNSPush"
)
