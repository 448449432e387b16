// Package logger configures zerolog for the service.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Writer      io.Writer
	Level       string
	Environment string
}

// New returns a logger writing JSON in production and human readable
// console output otherwise. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Environment != "production" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: cfg.Writer != nil}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "bookrest").Logger()
}
