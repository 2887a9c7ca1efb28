package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_TOKEN", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("METRICS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultSecretToken, cfg.SecretToken)
	assert.True(t, cfg.UsingDefaultSecret())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SECRET_TOKEN", "test_secret_token")
	t.Setenv("PORT", "9000")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_secret_token", cfg.SecretToken)
	assert.False(t, cfg.UsingDefaultSecret())
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"port not a number": {"PORT", "http"},
		"port out of range": {"PORT", "70000"},
		"unknown level":     {"LOG_LEVEL", "loud"},
		"unknown format":    {"LOG_FORMAT", "xml"},
		"bad timeout":       {"SHUTDOWN_TIMEOUT", "soon"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}
