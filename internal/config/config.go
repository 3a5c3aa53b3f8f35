// SPDX-License-Identifier: MIT

// Package config parses the linalg binary configuration from command-line
// flags with LINALG_* environment overrides. Priority: explicit flag, then
// environment, then default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/linalg/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LINALG_"

// Defaults.
const (
	DefaultPrecision = 6
	DefaultSeed      = 0 // 0 ⇒ time-derived seed
	DefaultLogLevel  = "warn"
	MaxPrecision     = 17
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the parsed configuration of one linalg run.
type Config struct {
	// Bench runs the benchmark suite instead of the interactive menu.
	Bench bool
	// Quick shrinks the benchmark size lists for a fast smoke run.
	Quick bool
	// Precision is the number of decimals printed by the calculators.
	Precision int
	// Seed seeds the benchmark data generator; 0 picks one from the clock.
	Seed uint64
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogConsole switches the log encoder from JSON to console lines.
	LogConsole bool
	// NoSpinner disables the bench-mode progress spinner.
	NoSpinner bool
	// Timeout bounds the benchmark run; 0 means no limit.
	Timeout time.Duration
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d outside [0, %d]: %w", c.Precision, MaxPrecision, ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %v is negative: %w", c.Timeout, ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Parse builds a Config from args (typically os.Args[1:]). Usage and parse
// errors are written to errOut.
func Parse(program string, args []string, errOut io.Writer) (Config, error) {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(errOut)

	var cfg Config
	fs.BoolVar(&cfg.Bench, "bench", false, "Run the benchmark suite and exit.")
	fs.BoolVar(&cfg.Quick, "quick", false, "Use small benchmark sizes.")
	fs.IntVar(&cfg.Precision, "precision", DefaultPrecision, "Decimals printed by the calculators.")
	fs.Uint64Var(&cfg.Seed, "seed", DefaultSeed, "Benchmark data seed (0 = from clock).")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Log level: trace, debug, info, warn, error, disabled.")
	fs.BoolVar(&cfg.LogConsole, "log-console", false, "Human-readable log lines instead of JSON.")
	fs.BoolVar(&cfg.NoSpinner, "no-spinner", false, "Disable the bench progress spinner.")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Abort the benchmark after this duration (0 = none).")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errOut, "Configuration error:", err)
		return Config{}, err
	}

	return cfg, nil
}
