// SPDX-License-Identifier: MIT

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv returns the trimmed value of EnvPrefix+key and whether it is non-empty.
func lookupEnv(key string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(EnvPrefix + key))
	return val, val != ""
}

func envString(key, def string) string {
	if val, ok := lookupEnv(key); ok {
		return val
	}
	return def
}

// envInt returns def when the variable is unset or not an integer.
func envInt(key string, def int) int {
	if val, ok := lookupEnv(key); ok {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

func envUint64(key string, def uint64) uint64 {
	if val, ok := lookupEnv(key); ok {
		if n, err := strconv.ParseUint(val, 10, 64); err == nil {
			return n
		}
	}
	return def
}

// envBool accepts true/1/yes and false/0/no, case-insensitively.
func envBool(key string, def bool) bool {
	if val, ok := lookupEnv(key); ok {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if val, ok := lookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return def
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides fills every field whose flag was not given explicitly.
//
// Variables: LINALG_BENCH, LINALG_QUICK, LINALG_PRECISION, LINALG_SEED,
// LINALG_LOG_LEVEL, LINALG_LOG_CONSOLE, LINALG_NO_SPINNER, LINALG_TIMEOUT.
func applyEnvOverrides(cfg *Config, fs *flag.FlagSet) {
	if !isFlagSet(fs, "bench") {
		cfg.Bench = envBool("BENCH", cfg.Bench)
	}
	if !isFlagSet(fs, "quick") {
		cfg.Quick = envBool("QUICK", cfg.Quick)
	}
	if !isFlagSet(fs, "precision") {
		cfg.Precision = envInt("PRECISION", cfg.Precision)
	}
	if !isFlagSet(fs, "seed") {
		cfg.Seed = envUint64("SEED", cfg.Seed)
	}
	if !isFlagSet(fs, "log-level") {
		cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	}
	if !isFlagSet(fs, "log-console") {
		cfg.LogConsole = envBool("LOG_CONSOLE", cfg.LogConsole)
	}
	if !isFlagSet(fs, "no-spinner") {
		cfg.NoSpinner = envBool("NO_SPINNER", cfg.NoSpinner)
	}
	if !isFlagSet(fs, "timeout") {
		cfg.Timeout = envDuration("TIMEOUT", cfg.Timeout)
	}
}
