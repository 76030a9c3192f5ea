// loader.go implements the configuration loading lifecycle.
//
// The loading sequence is:
//  1. Enforce UTC timezone to prevent drift bugs.
//  2. Load dotenv files via godotenv (the default .env is optional).
//  3. Use envconfig to process struct tags and populate the Config struct.
//  4. Populate BuildInfo from linker flags or embedded VCS data.
//  5. Validate the struct using go-playground/validator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ConfigError is a diagnostic error type returned by LoadConfig to aid debugging.
// It wraps a ConfigErrorType and an underlying error message.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig loads and validates the configuration from the environment.
//
// envFiles names dotenv files to load before reading the environment. With no
// arguments the optional ".env" in the working directory is loaded and a
// missing file is ignored; explicitly named files must exist. Dotenv values
// never override variables already present in the environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	// Step 1: Enforce UTC timezone to prevent drift bugs.
	time.Local = time.UTC

	// Step 2: Load dotenv files.
	if err := loadDotenv(envFiles); err != nil {
		return nil, err
	}

	// Step 3: Process envconfig tags to populate the Config struct.
	// The empty prefix "" means envconfig will use the exact tag values
	// (e.g., envconfig:"APP_ENV" reads APP_ENV directly).
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	// Step 4: Populate build metadata from linker-injected variables.
	cfg.Build = NewBuildInfo()

	// Step 5: Validate the populated struct.
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its struct tags. It is exported so tests
// and tools that build a Config by hand get the same checks as LoadConfig.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}
	return nil
}

func loadDotenv(files []string) error {
	if len(files) == 0 {
		// godotenv.Load() does NOT override existing environment variables.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &ConfigError{Type: ErrDotenv, Message: "failed to read .env", Err: err}
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return &ConfigError{
			Type:    ErrDotenv,
			Message: fmt.Sprintf("failed to load env files %v", files),
			Err:     err,
		}
	}
	return nil
}
