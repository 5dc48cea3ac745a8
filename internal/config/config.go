// Package config loads and validates application configuration.
//
// Configuration comes from environment variables with the STOREMATE_ prefix
// (optionally loaded from a .env file via godotenv's autoload), is mapped
// into structs by koanf using "." as the nesting delimiter, and validated
// with go-playground/validator so the process fails fast on missing values.
//
// Example: STOREMATE_DATABASE.URI -> Config.Database.URI
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a .env file into the process environment
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const envPrefix = "STOREMATE_"

// Config is the root configuration object.
//
// Auth and RateLimit are pointers because they are optional; defaults are
// injected when they are absent.
type Config struct {
	Primary   Primary          `koanf:"primary" validate:"required"`
	Server    ServerConfig     `koanf:"server" validate:"required"`
	Database  DatabaseConfig   `koanf:"database" validate:"required"`
	Auth      *AuthConfig      `koanf:"auth"`
	RateLimit *RateLimitConfig `koanf:"rate_limit"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch console/JSON output.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server runtime settings.
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains MongoDB connection parameters.
// ConnectTimeout is seconds and bounds both the initial connect and the ping.
type DatabaseConfig struct {
	URI            string `koanf:"uri" validate:"required"`
	Name           string `koanf:"name" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout"`
}

// AuthConfig tunes credential hashing.
type AuthConfig struct {
	BcryptCost int `koanf:"bcrypt_cost"`
}

// RateLimitConfig tunes the per-IP request limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// DefaultAuthConfig returns the hashing defaults (bcrypt's own default cost,
// signalled by zero and resolved by the password package).
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{BcryptCost: 0}
}

// DefaultRateLimitConfig returns a limiter generous enough to stay invisible
// to well-behaved clients.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{RequestsPerSecond: 20, Burst: 50}
}

// Load reads, unmarshals, validates, and defaults the configuration.
//
// Missing required values are fatal: a half-configured process should not
// come up at all.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Auth == nil {
		mainConfig.Auth = DefaultAuthConfig()
	}
	if mainConfig.RateLimit == nil {
		mainConfig.RateLimit = DefaultRateLimitConfig()
	}
	if mainConfig.Database.ConnectTimeout <= 0 {
		mainConfig.Database.ConnectTimeout = 10
	}

	// The API is open to browser clients from anywhere.
	if len(mainConfig.Server.CORSAllowedOrigins) == 0 {
		mainConfig.Server.CORSAllowedOrigins = []string{"*"}
	}

	return mainConfig, nil
}
