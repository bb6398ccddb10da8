// Package config handles application configuration.
//
// Values are layered: built-in defaults, then an optional config file
// (YAML or TOML, picked by extension), then environment variables with the
// prefix "APP" parsed by kelseyhightower/envconfig.
// Example: APP_PORT=8080, APP_DEBUG=true, APP_LOG_LEVEL=debug
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix shared by every environment variable.
const EnvPrefix = "APP"

// ConfigFileEnv names the environment variable that points at the config file.
const ConfigFileEnv = "APP_CONFIG_FILE"

// DefaultConfigFile is read from the working directory when no path is given.
const DefaultConfigFile = "config.yml"

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig `yaml:"server" toml:"server"`

	// Logging configuration
	Log LogConfig `yaml:"log" toml:"log"`

	// Metrics configuration
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`

	// Convert holds encoder defaults for the CLI
	Convert ConvertConfig `yaml:"convert" toml:"convert"`

	// Flask is the legacy name of the server section. Keys set here are
	// merged onto Server after the file is read.
	Flask *ServerConfig `yaml:"flask" toml:"flask"`

	// path is the file the config was read from, empty when none was used.
	path string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the HTTP server host (default: 127.0.0.1)
	Host string `envconfig:"HOST" yaml:"host" toml:"host"`

	// Port is the HTTP server port (default: 5000)
	Port int `envconfig:"PORT" yaml:"port" toml:"port"`

	// Debug switches gin to debug mode and forces debug logging
	Debug bool `envconfig:"DEBUG" yaml:"debug" toml:"debug"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout Duration `envconfig:"READ_TIMEOUT" yaml:"read_timeout" toml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout Duration `envconfig:"WRITE_TIMEOUT" yaml:"write_timeout" toml:"write_timeout"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout Duration `envconfig:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" yaml:"level" toml:"level"`

	// Format is the log format: json, text, plain (default: plain)
	Format string `envconfig:"LOG_FORMAT" yaml:"format" toml:"format"`

	// File, when set, sends logs to a rotated file instead of stdout
	File string `envconfig:"LOG_FILE" yaml:"file" toml:"file"`

	// MaxSizeMB is the size at which the log file is rotated (default: 100)
	MaxSizeMB int `envconfig:"LOG_MAX_SIZE_MB" yaml:"max_size_mb" toml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept (default: 3)
	MaxBackups int `envconfig:"LOG_MAX_BACKUPS" yaml:"max_backups" toml:"max_backups"`

	// MaxAgeDays is how long rotated files are kept (default: 28)
	MaxAgeDays int `envconfig:"LOG_MAX_AGE_DAYS" yaml:"max_age_days" toml:"max_age_days"`

	// Compress gzips rotated files
	Compress bool `envconfig:"LOG_COMPRESS" yaml:"compress" toml:"compress"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Enabled exposes collectors on Path (default: true)
	Enabled bool `envconfig:"METRICS_ENABLED" yaml:"enabled" toml:"enabled"`

	// Path is the scrape path (default: /metrics)
	Path string `envconfig:"METRICS_PATH" yaml:"path" toml:"path"`
}

// ConvertConfig holds encoder defaults.
type ConvertConfig struct {
	// Bits is the binary token width used by the convert command (default: 8)
	Bits int `envconfig:"CONVERT_BITS" yaml:"bits" toml:"bits"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			ReadTimeout:     Seconds(10),
			WriteTimeout:    Seconds(30),
			ShutdownTimeout: Seconds(30),
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "plain",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Convert: ConvertConfig{
			Bits: 8,
		},
	}
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Path returns the config file that was loaded, or "" when none was.
func (c *Config) Path() string {
	return c.path
}

// Load builds the configuration from defaults, the config file and the
// environment. An empty path falls back to APP_CONFIG_FILE and then to
// DefaultConfigFile; only an explicitly requested file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if resolved != "" {
		if err := readFile(resolved, cfg); err != nil {
			return nil, err
		}
		cfg.mergeFlask()
		cfg.path = resolved
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlask copies the keys set in a legacy flask section onto Server.
// A key absent from the section decodes to its zero value and is skipped.
func (c *Config) mergeFlask() {
	f := c.Flask
	if f == nil {
		return
	}
	c.Flask = nil

	if f.Host != "" {
		c.Server.Host = f.Host
	}
	if f.Port != 0 {
		c.Server.Port = f.Port
	}
	if f.Debug {
		c.Server.Debug = true
	}
	if f.ReadTimeout != 0 {
		c.Server.ReadTimeout = f.ReadTimeout
	}
	if f.WriteTimeout != 0 {
		c.Server.WriteTimeout = f.WriteTimeout
	}
	if f.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = f.ShutdownTimeout
	}
}

// applyEnv overlays environment variables. Sections are processed one by one
// so variables stay flat (APP_PORT instead of APP_SERVER_PORT). The structs
// carry no default tags, so unset variables leave file values alone.
func applyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, &cfg.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg.Log); err != nil {
		return fmt.Errorf("failed to load log config: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg.Metrics); err != nil {
		return fmt.Errorf("failed to load metrics config: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg.Convert); err != nil {
		return fmt.Errorf("failed to load convert config: %w", err)
	}
	return nil
}

// Validate reports every invalid setting in one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	if c.Convert.Bits <= 0 {
		errs = append(errs, fmt.Errorf("convert bits must be positive, got %d", c.Convert.Bits))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text", "plain":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics path %q must start with /", c.Metrics.Path))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path == "" {
		if fileExists(DefaultConfigFile) {
			return DefaultConfigFile, nil
		}
		return "", nil
	}
	if !fileExists(path) {
		return "", fmt.Errorf("config file %q does not exist", path)
	}
	return path, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
