// Package config defines the configuration structure for the wnspush
// services. Configuration is loaded once at process start and is immutable
// thereafter.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File (Lowest)
//
// Any missing required value or invalid format is reported as a *ConfigError
// and the process refuses to start (fail fast).
package config

import (
	"time"
)

// Config is the top-level configuration struct. Sub-components receive only
// the specific config subsets they require.
type Config struct {
	// System Metadata
	Environment string `envconfig:"APP_ENV" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"wnspush"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Domain Configurations
	Server        ServerConfig
	Observability ObservabilityConfig

	// Build Metadata (Injected via ldflags, not Env)
	Build BuildInfo
}

// ServerConfig holds HTTP server settings for the render API.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s" validate:"gt=0"`
	MaxBodyBytes    int64         `envconfig:"MAX_REQUEST_BODY_BYTES" default:"65536" validate:"gt=0"`
	EnableGzip      bool          `envconfig:"ENABLE_GZIP" default:"true"`

	// CorsAllowedOrigins is a comma-separated list; "*" allows any origin.
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*" validate:"min=1"`
}

// Metrics backends.
const (
	MetricsBackendNone       = "none"
	MetricsBackendPrometheus = "prometheus"
	MetricsBackendCloudWatch = "cloudwatch"
)

// ObservabilityConfig holds telemetry settings.
type ObservabilityConfig struct {
	MetricsBackend  string `envconfig:"METRICS_BACKEND" default:"prometheus" validate:"oneof=none prometheus cloudwatch"`
	MetricNamespace string `envconfig:"METRIC_NAMESPACE" default:"WNSPush"`
	AWSRegion       string `envconfig:"AWS_REGION" default:"us-east-1"`

	// LocalStack Support (Empty in Prod)
	AWSEndpointURL string `envconfig:"AWS_ENDPOINT_URL" validate:"omitempty,url"`
}

// BuildInfo holds build-time metadata injected via ldflags.
// These values are NOT populated from environment variables.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrDotenv indicates an explicitly requested dotenv file could not be read.
	ErrDotenv ConfigErrorType = "DOTENV_FAILED"
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
