// Package log builds slog handlers from level and format strings.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Supported formats.
const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// CreateHandler returns a handler writing to w at the given level and format.
// "logfmt" is an alias for "text".
func CreateHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case FormatText, FormatLogfmt, "":
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog.Level.
// An empty string means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// ValidFormat reports whether CreateHandler accepts format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatLogfmt, FormatJSON, "":
		return true
	}
	return false
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
