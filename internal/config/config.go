// Package config loads tautui's ambient settings.
//
// Precedence (highest to lowest): flags > TAUTUI_* env vars > config file > defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/steipete/tautui/internal/logging"
)

// EnvPrefix is stripped from environment variable names before they become keys.
const EnvPrefix = "TAUTUI_"

// Defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// defaultFiles are probed in the working directory when no file is given.
var defaultFiles = []string{"tautui.yaml", "tautui.yml"}

// Config holds the ambient settings shared by the library and the CLI.
type Config struct {
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	DebugLog  string `koanf:"debug_log"`
	NoColor   bool   `koanf:"no_color"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	var errs []error
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log_level %q (allowed: debug, info, warn, error)", c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log_format %q (allowed: text, json)", c.LogFormat))
	}
	return errors.Join(errs...)
}

// FromEnv loads defaults and TAUTUI_* variables only.
func FromEnv() (*Config, error) {
	return Load("", nil)
}

// Load reads configuration from cfgFile, the environment, and explicitly set flags.
// An empty cfgFile probes tautui.yaml and tautui.yml in the working directory.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"log_level":  def.LogLevel,
		"log_format": def.LogFormat,
		"debug_log":  def.DebugLog,
		"no_color":   def.NoColor,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// TAUTUI_LOG_LEVEL -> log_level. Empty variables count as unset.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the file to load. An explicit path must exist.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, name := range defaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

type configKey struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config stored by WithConfig, or defaults.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	def := Default()
	return &def
}
