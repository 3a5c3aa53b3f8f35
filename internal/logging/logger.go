// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used by the calculator, the
// benchmark harness and the linalg binary. The numeric packages never log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidLevel is returned for a level name zerolog does not recognize.
var ErrInvalidLevel = errors.New("logging: invalid level")

// Format selects the encoder.
type Format int

const (
	// FormatJSON writes one JSON object per event.
	FormatJSON Format = iota
	// FormatConsole writes human-readable lines without color.
	FormatConsole
)

// DefaultLevel is used when the level string is empty.
const DefaultLevel = zerolog.InfoLevel

// ParseLevel maps a case-insensitive level name to a zerolog level.
// The empty string yields DefaultLevel.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%q: %w", s, ErrInvalidLevel)
	}

	return lvl, nil
}

// New returns a timestamped logger writing to w at the given level.
func New(w io.Writer, level string, format Format) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Component returns a child logger tagged with component=name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
