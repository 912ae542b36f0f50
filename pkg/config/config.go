// Package config loads tarefas settings from defaults, an optional TOML file,
// a .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultAppEnv      = "development"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultShellPrompt = "tarefas> "
	DefaultDateFormat  = "2006-01-02 15:04"
)

// ConfigPathEnv names the variable holding the config file path when no
// path is passed explicitly.
const ConfigPathEnv = "TAREFAS_CONFIG"

// Config holds application configuration.
type Config struct {
	AppEnv    string `toml:"app_env"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// DefaultPriority pre-fills new tasks when no priority is given.
	DefaultPriority string `toml:"default_priority"`
	ShellPrompt     string `toml:"shell_prompt"`
	// DateFormat is a Go time layout used when rendering creation times.
	DateFormat string `toml:"date_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AppEnv:          DefaultAppEnv,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		DefaultPriority: value_objects.DefaultPriority.String(),
		ShellPrompt:     DefaultShellPrompt,
		DateFormat:      DefaultDateFormat,
	}
}

// Load builds the configuration. path may be empty, in which case
// TAREFAS_CONFIG is consulted. A named file that cannot be read is an error.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.DefaultPriority = getEnv("TAREFAS_DEFAULT_PRIORITY", cfg.DefaultPriority)
	cfg.ShellPrompt = getEnv("TAREFAS_SHELL_PROMPT", cfg.ShellPrompt)
	cfg.DateFormat = getEnv("TAREFAS_DATE_FORMAT", cfg.DateFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("read config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks that every setting holds an accepted value.
func (c *Config) Validate() error {
	if _, err := value_objects.ParsePriority(c.DefaultPriority); err != nil {
		return fmt.Errorf("default priority: %w", err)
	}
	if _, err := observability.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := observability.ParseLogFormat(c.LogFormat); err != nil {
		return err
	}
	if strings.TrimSpace(c.DateFormat) == "" {
		return errors.New("date format must not be empty")
	}
	return nil
}

// Priority returns the parsed default priority.
func (c *Config) Priority() value_objects.Priority {
	p, err := value_objects.ParsePriority(c.DefaultPriority)
	if err != nil {
		return value_objects.DefaultPriority
	}
	return p
}

// LogConfig translates the logging settings for observability.NewLogger.
func (c *Config) LogConfig(version string) observability.LogConfig {
	logCfg := observability.DefaultLogConfig()
	if c.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	if level, err := observability.ParseLogLevel(c.LogLevel); err == nil {
		logCfg.Level = level
	}
	if format, err := observability.ParseLogFormat(c.LogFormat); err == nil {
		logCfg.Format = format
	}
	logCfg.ServiceVersion = version
	return logCfg
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
