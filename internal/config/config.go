// Package config loads toybox settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"toybox/internal/chart"
	tblog "toybox/internal/log"
)

// Environment variables read by Load.
const (
	EnvTickInterval  = "TOYBOX_TICK_INTERVAL"
	EnvLogLevel      = "TOYBOX_LOG_LEVEL"
	EnvLogFormat     = "TOYBOX_LOG_FORMAT"
	EnvLogFile       = "TOYBOX_LOG_FILE"
	EnvExportDir     = "TOYBOX_EXPORT_DIR"
	EnvExportFormat  = "TOYBOX_EXPORT_FORMAT"
	EnvOTLPEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTELService   = "OTEL_SERVICE_NAME"
	defaultService   = "toybox"
	defaultInterval  = 100 * time.Millisecond
	defaultLogLevel  = "info"
	defaultLogFormat = tblog.FormatText
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime settings.
type Config struct {
	TickInterval time.Duration
	Logging      LoggingConfig
	Export       ExportConfig
	Telemetry    TelemetryConfig
}

// LoggingConfig selects the slog handler. An empty File discards logs while
// the TUI owns the terminal.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// ExportConfig controls chart image export. An empty Dir means the export
// store's default location.
type ExportConfig struct {
	Dir    string
	Format string
}

// TelemetryConfig enables OTLP trace export when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string
	ServiceName string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TickInterval: defaultInterval,
		Logging:      LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Export:       ExportConfig{Format: string(chart.FormatPNG)},
		Telemetry:    TelemetryConfig{ServiceName: defaultService},
	}
}

// Load reads .env (if present) and the environment on top of Default, then validates.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Default()
	var merr error

	if v := os.Getenv(EnvTickInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvTickInterval, err))
		} else {
			cfg.TickInterval = d
		}
	}
	cfg.Logging.Level = getEnvOrDefault(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = getEnvOrDefault(EnvLogFormat, cfg.Logging.Format)
	cfg.Logging.File = os.Getenv(EnvLogFile)
	cfg.Export.Dir = os.Getenv(EnvExportDir)
	cfg.Export.Format = getEnvOrDefault(EnvExportFormat, cfg.Export.Format)
	cfg.Telemetry.Endpoint = os.Getenv(EnvOTLPEndpoint)
	cfg.Telemetry.ServiceName = getEnvOrDefault(EnvOTELService, cfg.Telemetry.ServiceName)

	if err := cfg.Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}
	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, merr)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var merr *multierror.Error
	if c.TickInterval <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("tick interval must be positive, got %s", c.TickInterval))
	}
	if _, err := tblog.ParseLevel(c.Logging.Level); err != nil {
		merr = multierror.Append(merr, err)
	}
	if !tblog.ValidFormat(c.Logging.Format) {
		merr = multierror.Append(merr, fmt.Errorf("%w: %q", tblog.ErrUnknownFormat, c.Logging.Format))
	}
	if _, err := chart.ParseFormat(c.Export.Format); err != nil {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}
