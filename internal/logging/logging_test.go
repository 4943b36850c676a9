package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestValidLevelAndFormat(t *testing.T) {
	assert.True(t, ValidLevel("Warning"))
	assert.False(t, ValidLevel("trace"))
	assert.True(t, ValidFormat("JSON"))
	assert.False(t, ValidFormat("logfmt"))
}

func TestNew_NilOutputDiscards(t *testing.T) {
	logger := New(Config{Level: "debug"})
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Debug("hidden")
	logger.Info("shown", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.EqualValues(t, 1, rec["k"])
}

func TestNew_TextIsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "bogus", Output: &buf})
	logger.Warn("careful")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "msg=careful")
}
