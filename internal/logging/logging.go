// Package logging builds the zerolog logger shared by the game packages.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chosenoffset.com/blorp/internal/simulation"
)

// New creates a logger writing to out (stderr when nil). Every line carries
// a per-run session id so logs from separate runs can be told apart.
func New(cfg simulation.LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	w := out
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	badLevel := err != nil
	if badLevel || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()

	if badLevel {
		logger.Warn().Str("requested_level", cfg.Level).Msg("Unknown log level, using info")
	}
	return logger
}

// Component returns a child logger tagged with a component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
