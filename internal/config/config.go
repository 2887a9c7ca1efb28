package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultSecretToken is used when SECRET_TOKEN is unset.
// It is an insecure fallback kept so the service runs out-of-the-box.
const DefaultSecretToken = "default_token"

// Config contains runtime configuration required by the service.
// It is built once at startup and passed by value afterwards.
type Config struct {
	SecretToken     string
	Addr            string // host:port for the ingestion API
	MetricsAddr     string // empty disables the metrics listener
	LogLevel        string
	LogFormat       string // "console" or "json"
	ShutdownTimeout time.Duration
}

// UsingDefaultSecret reports whether the insecure fallback secret is active.
func (c Config) UsingDefaultSecret() bool {
	return c.SecretToken == DefaultSecretToken
}

// Load reads values from environment variables, applying defaults.
//
//	SECRET_TOKEN      shared secret for X-API-Key (default "default_token")
//	PORT              listen port on all interfaces (default 8080)
//	METRICS_ADDR      prometheus listener, e.g. ":9090" (default disabled)
//	LOG_LEVEL         debug|info|warn|error (default info)
//	LOG_FORMAT        console|json (default console)
//	SHUTDOWN_TIMEOUT  graceful shutdown bound (default 10s)
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SECRET_TOKEN", DefaultSecretToken)
	v.SetDefault("PORT", "8080")
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	// An empty SECRET_TOKEN counts as unset.
	secret := v.GetString("SECRET_TOKEN")
	if secret == "" {
		secret = DefaultSecretToken
	}

	port := strings.TrimSpace(v.GetString("PORT"))
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return Config{}, fmt.Errorf("PORT must be a number in 1-65535, got %q", port)
	}

	level := strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL")))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", level)
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if format != "console" && format != "json" {
		return Config{}, errors.New(`LOG_FORMAT must be "console" or "json"`)
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("SHUTDOWN_TIMEOUT")))
	if err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	return Config{
		SecretToken:     secret,
		Addr:            net.JoinHostPort("0.0.0.0", port),
		MetricsAddr:     strings.TrimSpace(v.GetString("METRICS_ADDR")),
		LogLevel:        level,
		LogFormat:       format,
		ShutdownTimeout: timeout,
	}, nil
}
