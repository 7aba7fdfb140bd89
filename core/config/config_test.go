package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"secure-app-server/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedVars = []string{
	"HOST", "PORT", "TLS_CERT", "TLS_KEY",
	"SERVER_READ_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
	"SERVER_HANDSHAKE_TIMEOUT", "SERVER_MAX_CONNECTIONS", "SERVER_DOCS",
	"STATIC_SOURCE", "STATIC_ROOT", "STATIC_INDEX",
	"STORAGE_ENDPOINT", "STORAGE_BUCKET",
	"METRICS_NAMESPACE", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv unsets every variable the loader reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range managedVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, uint16(8443), cfg.Port)
	assert.Equal(t, "cert.pem", cfg.TLS.Cert)
	assert.Equal(t, "key.pem", cfg.TLS.Key)
	assert.Equal(t, "0.0.0.0:8443", cfg.BindAddress())

	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 75*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.HandshakeTimeout)
	assert.Equal(t, 10000, cfg.Server.MaxConnections)
	assert.True(t, cfg.Server.Docs)

	assert.Equal(t, "local", cfg.Static.Source)
	assert.Equal(t, "./static", cfg.Static.Root)
	assert.Equal(t, "index.html", cfg.Static.Index)
	assert.Equal(t, "api", cfg.Metrics.Namespace)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9443")
	t.Setenv("TLS_CERT", "/etc/tls/chain.pem")
	t.Setenv("TLS_KEY", "/etc/tls/key.pem")
	t.Setenv("SERVER_IDLE_TIMEOUT", "30s")
	t.Setenv("SERVER_DOCS", "false")
	t.Setenv("STATIC_SOURCE", "bucket")
	t.Setenv("STORAGE_BUCKET", "site")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9443", cfg.BindAddress())
	assert.Equal(t, "/etc/tls/chain.pem", cfg.TLS.Cert)
	assert.Equal(t, "/etc/tls/key.pem", cfg.TLS.Key)
	assert.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	assert.False(t, cfg.Server.Docs)
	assert.Equal(t, "bucket", cfg.Static.Source)
	assert.Equal(t, "site", cfg.Storage.Bucket)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"NotANumber", "notanumber"},
		{"Negative", "-1"},
		{"TooLarge", "70000"},
		{"Fraction", "84.43"},
		{"Empty", ""},
		{"Hexadecimal", "0x20FB"},
		{"Whitespace", " 8443"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORT", tt.port)

			cfg, err := config.LoadConfig(t.TempDir())
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_DecimalPort(t *testing.T) {
	tests := []struct {
		port string
		want uint16
	}{
		{"8443", 8443},
		{"010", 10},
		{"08443", 8443},
		{"0", 0},
		{"65535", 65535},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORT", tt.port)

			cfg, err := config.LoadConfig(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Port)
		})
	}
}

func TestLoadConfig_EmptyValueIsNotAbsent(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_READ_TIMEOUT", "")

	_, err := config.LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfig_InvalidStaticSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATIC_SOURCE", "ftp")

	_, err := config.LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "STATIC_SOURCE")
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("HOST=10.0.0.5\nPORT=10443\nTLS_CERT=from-file.pem\n"), 0o600))

	// Already-set variables win over the file.
	t.Setenv("PORT", "11443")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, uint16(11443), cfg.Port)
	assert.Equal(t, "from-file.pem", cfg.TLS.Cert)
	assert.Equal(t, "key.pem", cfg.TLS.Key)
}

func TestLoadConfig_InvalidPortInDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=eighty\n"), 0o600))

	_, err := config.LoadConfig(dir)
	assert.Error(t, err)
}

func TestConfig_BindAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"IPv4", config.Config{Host: "0.0.0.0", Port: 8443}, "0.0.0.0:8443"},
		{"Hostname", config.Config{Host: "localhost", Port: 443}, "localhost:443"},
		{"IPv6", config.Config{Host: "::1", Port: 8443}, "[::1]:8443"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.BindAddress())
		})
	}
}
