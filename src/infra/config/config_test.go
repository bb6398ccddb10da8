package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// chdir moves into an empty directory so no stray config.yml is picked up.
func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	t.Setenv(ConfigFileEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Path())
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Addr())
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout.Std())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "plain", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 8, cfg.Convert.Bits)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `server:
  host: 0.0.0.0
  port: 8081
  debug: true
  shutdown_timeout: 5s
log:
  format: json
metrics:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.Addr())
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout.Std())
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout.Std(), "missing keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level, "debug forces debug logging")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `[server]
host = "localhost"
port = 9000
read_timeout = "1m"

[convert]
bits = 16
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.Addr())
	assert.Equal(t, time.Minute, cfg.Server.ReadTimeout.Std())
	assert.Equal(t, 16, cfg.Convert.Bits)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FlaskSection(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		body  string
		addr  string
		debug bool
	}{
		{
			name:  "yaml",
			file:  "config.yml",
			body:  "flask:\n  host: 0.0.0.0\n  port: 5001\n  debug: false\n",
			addr:  "0.0.0.0:5001",
			debug: false,
		},
		{
			name:  "toml",
			file:  "config.toml",
			body:  "[flask]\nhost = \"0.0.0.0\"\nport = 5002\ndebug = true\n",
			addr:  "0.0.0.0:5002",
			debug: true,
		},
		{
			name: "partial section keeps server values",
			file: "config.yml",
			body: "server:\n  host: 10.0.0.1\nflask:\n  port: 5003\n",
			addr: "10.0.0.1:5003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.addr, cfg.Server.Addr())
			assert.Equal(t, tt.debug, cfg.Server.Debug)
			assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout.Std())
			assert.Nil(t, cfg.Flask)
		})
	}
}

func TestLoad_FlaskSectionEnvOverride(t *testing.T) {
	t.Setenv("APP_PORT", "7001")

	cfg, err := Load(writeFile(t, "config.yml", "flask:\n  port: 5001\n"))
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestLoad_EmptyYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", "server:\n  port: 8081\n  host: 10.0.0.1\n")
	t.Setenv("APP_PORT", "7000")
	t.Setenv("APP_WRITE_TIMEOUT", "2s")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "10.0.0.1", cfg.Server.Host, "unset env keeps file value")
	assert.Equal(t, 2*time.Second, cfg.Server.WriteTimeout.Std())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigFileEnv(t *testing.T) {
	path := writeFile(t, "custom.yaml", "server:\n  port: 6001\n")
	t.Setenv(ConfigFileEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6001, cfg.Server.Port)
	assert.Equal(t, path, cfg.Path())
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	chdir(t)
	t.Setenv(ConfigFileEnv, "")
	require.NoError(t, os.WriteFile(DefaultConfigFile, []byte("server:\n  port: 6002\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6002, cfg.Server.Port)
	assert.Equal(t, DefaultConfigFile, cfg.Path())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		env  map[string]string
	}{
		{name: "unknown yaml key", file: "config.yml", body: "server:\n  prot: 1\n"},
		{name: "unknown toml key", file: "config.toml", body: "[server]\nprot = 1\n"},
		{name: "bad duration", file: "config.yml", body: "server:\n  read_timeout: soon\n"},
		{name: "unsupported extension", file: "config.json", body: "{}"},
		{name: "port out of range", file: "config.yml", body: "server:\n  port: 70000\n"},
		{name: "bad bits", file: "config.yml", body: "convert:\n  bits: 0\n"},
		{name: "bad log format", file: "config.yml", body: "log:\n  format: xml\n"},
		{name: "bad env value", file: "config.yml", body: "", env: map[string]string{"APP_PORT": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, tt.file, tt.body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
