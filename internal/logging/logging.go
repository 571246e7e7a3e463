// Package logging builds the zerolog logger used by the command line.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"fhir-caster/internal/config"
)

// ParseLevel parses a level name. An empty name is info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}

// New creates a logger writing to w in the configured format.
func New(w io.Writer, cfg config.Log) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.Format != config.LogJSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
