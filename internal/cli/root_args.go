package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"toybox/internal/config"
	"toybox/internal/telemetry"
)

// RootArgs holds the persistent flags and the state PersistentPreRunE
// builds from them for the subcommands.
type RootArgs struct {
	logLevel  *string
	logFormat *string
	logFile   *string

	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	telemetry *telemetry.Provider
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		logFile:   new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetLogFile() string {
	return *a.logFile
}

// Config returns the loaded configuration, or the defaults before PersistentPreRunE.
func (a *RootArgs) Config() *config.Config {
	if a.cfg == nil {
		return config.Default()
	}
	return a.cfg
}

// Logger returns the logger built from the flags, or slog.Default.
func (a *RootArgs) Logger() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

// Close flushes pending spans and closes the log file. It is safe to call
// more than once; later calls do nothing.
func (a *RootArgs) Close(ctx context.Context) error {
	a.Logger().Debug("shutting down")

	var errs []error
	if err := a.telemetry.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown telemetry: %w", err))
	}
	a.telemetry = nil
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log file: %w", err))
		}
		a.logCloser = nil
	}
	return errors.Join(errs...)
}
