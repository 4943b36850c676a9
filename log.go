package tautui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/steipete/tautui/internal/config"
	"github.com/steipete/tautui/internal/debug"
	"github.com/steipete/tautui/internal/logging"
)

// LogEntry is a framework log record as delivered to a LogHook.
// Attribute keys are qualified by their groups, e.g. "term.cols".
type LogEntry = logging.Entry

// LogHook observes every record logged through Logger, whatever the level of
// the installed sink. Hooks run synchronously on the logging goroutine.
type LogHook = logging.Hook

// LogOptions configures the framework logger.
type LogOptions struct {
	// Level is the sink level: debug, info, warn or error. Empty means info.
	Level string
	// Format is text or json. Empty means text.
	Format string
	// Output receives log lines. Nil discards them.
	Output io.Writer
	// DebugLog, when set, appends debug-level lines to this file instead of Output.
	DebugLog string
}

type logRegistry struct {
	mu     sync.Mutex
	hooks  *logging.HookSet
	logger atomic.Pointer[slog.Logger]
	closer io.Closer
}

var registry = newLogRegistry()

// stderr is the sink ConfigureFromEnv writes to. Tests replace it.
var stderr io.Writer = os.Stderr

func newLogRegistry() *logRegistry {
	r := &logRegistry{hooks: &logging.HookSet{}}
	r.logger.Store(slog.New(logging.NewHookHandler(nil, r.hooks)))
	return r
}

// install swaps the sink and closes the previously owned one.
func (r *logRegistry) install(h slog.Handler, closer io.Closer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Store(slog.New(logging.NewHookHandler(h, r.hooks)))

	prev := r.closer
	r.closer = closer
	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Logger returns the framework logger. Until configured it discards records,
// though hooks still see them. Fetch it at the point of use: a logger obtained
// before SetLogger or Configure keeps writing to the sink it was created with.
func Logger() *slog.Logger {
	return registry.logger.Load()
}

// SetLogger routes framework logs through l. A nil l restores the silent
// default. Any debug log opened by EnableDebugLog is closed.
func SetLogger(l *slog.Logger) {
	var h slog.Handler
	if l != nil {
		h = l.Handler()
	}
	if err := registry.install(h, nil); err != nil {
		Logger().Warn("closing previous debug log failed", "err", err)
	}
}

// AddLogHook registers h and returns a function that removes it.
// A nil h is ignored.
func AddLogHook(h LogHook) (remove func()) {
	return registry.hooks.Add(h)
}

// EnableDebugLog appends debug-level text logs to path, creating parent
// directories as needed. An empty path means "tautui-debug.log" in the
// working directory.
func EnableDebugLog(path string) error {
	return Configure(LogOptions{Level: "debug", DebugLog: orDefault(path, debug.DefaultPath)})
}

// DisableDebugLog closes the debug log and restores the silent default.
func DisableDebugLog() error {
	if err := registry.install(nil, nil); err != nil {
		return fmt.Errorf("close debug log: %w", err)
	}
	return nil
}

// Configure installs a logger built from opts.
func Configure(opts LogOptions) error {
	level := orDefault(opts.Level, config.DefaultLogLevel)
	format := orDefault(opts.Format, config.DefaultLogFormat)
	if !logging.ValidLevel(level) {
		return fmt.Errorf("invalid log level %q", opts.Level)
	}
	if !logging.ValidFormat(format) {
		return fmt.Errorf("invalid log format %q", opts.Format)
	}

	if opts.DebugLog == "" {
		var h slog.Handler
		if opts.Output != nil {
			h = logging.NewHandler(logging.Config{Level: level, Format: format, Output: opts.Output})
		}
		return registry.install(h, nil)
	}

	f, err := debug.Open(opts.DebugLog)
	if err != nil {
		return fmt.Errorf("enable debug log: %w", err)
	}
	h := logging.NewHandler(logging.Config{Level: "debug", Format: format, Output: f})
	if err := registry.install(h, f); err != nil {
		Logger().Warn("closing previous debug log failed", "err", err)
	}
	Logger().Debug("debug log enabled", "path", f.Path(), "version", Version)
	return nil
}

// ConfigureFromEnv configures logging from TAUTUI_LOG_LEVEL, TAUTUI_LOG_FORMAT
// and TAUTUI_DEBUG_LOG, plus tautui.yaml in the working directory if present.
// Without a debug log, output goes to stderr.
func ConfigureFromEnv() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return Configure(LogOptions{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		Output:   stderr,
		DebugLog: cfg.DebugLog,
	})
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
