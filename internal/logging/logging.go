// Package logging builds the slog loggers used by tautui and fans framework
// records out to registered hooks.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config selects the sink for a logger.
type Config struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	Output io.Writer
}

// New returns a logger writing to cfg.Output. A nil Output discards.
func New(cfg Config) *slog.Logger {
	return slog.New(NewHandler(cfg))
}

// NewHandler returns the handler New would wrap.
func NewHandler(cfg Config) slog.Handler {
	if cfg.Output == nil {
		return slog.DiscardHandler
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		return slog.NewJSONHandler(cfg.Output, opts)
	default:
		return slog.NewTextHandler(cfg.Output, opts)
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s is a level name ParseLevel understands.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ValidFormat reports whether s names a handler format.
func ValidFormat(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "json":
		return true
	}
	return false
}
