// SPDX-License-Identifier: MIT

// Package logger builds the structured slog loggers used across ncd.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level names accepted by ParseLevel.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Handler formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrUnknownLevel indicates a level name outside debug|info|warn|error.
	ErrUnknownLevel = errors.New("logger: unknown level")
	// ErrUnknownFormat indicates a format outside text|json.
	ErrUnknownFormat = errors.New("logger: unknown format")
)

// ParseLevel maps a level name (case-insensitive, "warning" accepted) to a
// slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case DebugLevel:
		return slog.LevelDebug, nil
	case InfoLevel, "":
		return slog.LevelInfo, nil
	case WarnLevel, "warning":
		return slog.LevelWarn, nil
	case ErrorLevel:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
	}
}

// CheckFormat validates a handler format name.
func CheckFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, FormatJSON, "":
		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// New returns a logger writing to w with a text or JSON handler.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err = CheckFormat(format); err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Err wraps an error as a structured attribute.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
