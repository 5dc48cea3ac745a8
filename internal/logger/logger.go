// Package logger constructs the application's zerolog logger.
//
// In the local environment logs go to a human-friendly console writer;
// everywhere else they are structured JSON on stderr so a collector can
// ingest them.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/storemate/backend/internal/config"
)

// New builds the root logger for the given configuration.
func New(cfg *config.Config) *zerolog.Logger {
	var logger zerolog.Logger

	if cfg.Primary.Env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
	} else {
		logger = zerolog.New(os.Stderr).
			With().Timestamp().Str("service", "storemate").Logger().
			Level(zerolog.InfoLevel)
	}

	return &logger
}
