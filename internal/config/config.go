// Package config loads runtime settings from the environment. Values are
// read once at startup and never change afterwards.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Defaults for everything except the signing key, which has no safe default.
const (
	DefaultAddr            = ":3000"
	DefaultDatabaseDSN     = "file::memory:?cache=shared"
	DefaultTokenExpiration = 24 * time.Hour
	DefaultLogLevel        = "info"
)

// ErrMissingSigningKey means the process cannot issue or verify tokens at
// all; startup must abort.
var ErrMissingSigningKey = errors.New("config: AUTHGATE_SIGNING_KEY is required")

// Config holds the service settings.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DatabaseDSN: SQLite DSN for the user directory.
//   - SigningKey: HMAC secret for signing session tokens (HS256).
//   - TokenExpiration: session token lifetime.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr            string
	DatabaseDSN     string
	SigningKey      string
	TokenExpiration time.Duration
	LogLevel        string
}

// Load reads the configuration from the environment. The signing key is
// mandatory; everything else falls back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:            envOr("AUTHGATE_ADDR", DefaultAddr),
		DatabaseDSN:     envOr("AUTHGATE_DATABASE_DSN", DefaultDatabaseDSN),
		SigningKey:      os.Getenv("AUTHGATE_SIGNING_KEY"),
		TokenExpiration: DefaultTokenExpiration,
		LogLevel:        envOr("AUTHGATE_LOG_LEVEL", DefaultLogLevel),
	}

	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}

	if raw := os.Getenv("AUTHGATE_TOKEN_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, errors.New("config: AUTHGATE_TOKEN_TTL_HOURS must be a positive integer")
		}
		cfg.TokenExpiration = time.Duration(hours) * time.Hour
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
