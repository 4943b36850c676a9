package tautui

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steipete/tautui/internal/debug"
)

// resetLogging restores the silent default after a test.
func resetLogging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, DisableDebugLog())
	})
}

type hookRecorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (r *hookRecorder) hook(e LogEntry) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

func (r *hookRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		out = append(out, e.Message)
	}
	return out
}

func TestLogger_SilentByDefault(t *testing.T) {
	resetLogging(t)

	logger := Logger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))

	_, err := os.Stat(debug.DefaultPath)
	assert.True(t, os.IsNotExist(err), "no debug log should exist before EnableDebugLog")
}

func TestSetLogger(t *testing.T) {
	resetLogging(t)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello", "who", "world")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "who=world")

	buf.Reset()
	SetLogger(nil)
	Logger().Error("gone")
	assert.Empty(t, buf.String())
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("disk gone") }

func TestSetLogger_ReportsCloseFailure(t *testing.T) {
	resetLogging(t)
	require.NoError(t, registry.install(nil, failingCloser{}))

	rec := &hookRecorder{}
	defer AddLogHook(rec.hook)()

	SetLogger(nil)

	require.Equal(t, []string{"closing previous debug log failed"}, rec.messages())
	v, ok := rec.entries[0].Attr("err")
	require.True(t, ok)
	assert.Contains(t, v.String(), "disk gone")
}

func TestAddLogHook(t *testing.T) {
	resetLogging(t)

	rec := &hookRecorder{}
	remove := AddLogHook(rec.hook)

	Logger().Debug("one")
	Logger().With("k", "v").Info("two")
	remove()
	remove()
	Logger().Info("three")

	assert.Equal(t, []string{"one", "two"}, rec.messages())
	v, ok := rec.entries[1].Attr("k")
	require.True(t, ok)
	assert.Equal(t, "v", v.String())
}

func TestAddLogHook_SurvivesSinkChanges(t *testing.T) {
	resetLogging(t)

	rec := &hookRecorder{}
	defer AddLogHook(rec.hook)()

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})))
	Logger().Info("below sink level")

	assert.Empty(t, buf.String())
	assert.Equal(t, []string{"below sink level"}, rec.messages())
}

func TestAddLogHook_Nil(t *testing.T) {
	remove := AddLogHook(nil)
	require.NotNil(t, remove)
	remove()
}

func TestEnableDebugLog(t *testing.T) {
	resetLogging(t)

	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	require.NoError(t, EnableDebugLog(path))

	Logger().Debug("render", "frame", 7)
	require.NoError(t, DisableDebugLog())
	Logger().Debug("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "debug log enabled")
	assert.Contains(t, out, "msg=render frame=7")
	assert.NotContains(t, out, "after close")
}

func TestEnableDebugLog_ReplacedBySetLogger(t *testing.T) {
	resetLogging(t)

	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, EnableDebugLog(path))
	SetLogger(nil)
	Logger().Debug("not written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "not written")
}

func TestEnableDebugLog_Error(t *testing.T) {
	resetLogging(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := EnableDebugLog(filepath.Join(blocker, "debug.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enable debug log")
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name      string
		opts      LogOptions
		errSubstr string
	}{
		{name: "defaults", opts: LogOptions{}},
		{name: "json debug", opts: LogOptions{Level: "debug", Format: "json"}},
		{name: "bad level", opts: LogOptions{Level: "chatty"}, errSubstr: "invalid log level"},
		{name: "bad format", opts: LogOptions{Format: "xml"}, errSubstr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLogging(t)
			var buf bytes.Buffer
			tt.opts.Output = &buf

			err := Configure(tt.opts)
			if tt.errSubstr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)
			Logger().Warn("ping")
			assert.Contains(t, buf.String(), "ping")
		})
	}
}

func TestConfigure_LevelFilters(t *testing.T) {
	resetLogging(t)

	var buf bytes.Buffer
	require.NoError(t, Configure(LogOptions{Level: "warn", Output: &buf}))
	Logger().Info("skip")
	Logger().Warn("keep")

	assert.NotContains(t, buf.String(), "skip")
	assert.Contains(t, buf.String(), "keep")
}

func TestConfigureFromEnv(t *testing.T) {
	resetLogging(t)
	t.Chdir(t.TempDir())
	t.Setenv("TAUTUI_LOG_LEVEL", "error")
	t.Setenv("TAUTUI_LOG_FORMAT", "json")
	t.Setenv("TAUTUI_DEBUG_LOG", "")

	var buf bytes.Buffer
	prev := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = prev })

	require.NoError(t, ConfigureFromEnv())
	Logger().Warn("quiet")
	Logger().Error("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), `"msg":"loud"`)
}

func TestConfigureFromEnv_DebugLog(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TAUTUI_LOG_LEVEL", "")
	t.Setenv("TAUTUI_LOG_FORMAT", "")
	t.Setenv("TAUTUI_DEBUG_LOG", "trace/out.log")

	require.NoError(t, ConfigureFromEnv())
	Logger().Debug("traced")
	require.NoError(t, DisableDebugLog())

	data, err := os.ReadFile(filepath.Join(dir, "trace", "out.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "traced")
}

func TestConfigureFromEnv_InvalidLevel(t *testing.T) {
	resetLogging(t)
	t.Chdir(t.TempDir())
	t.Setenv("TAUTUI_LOG_LEVEL", "nope")

	err := ConfigureFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
