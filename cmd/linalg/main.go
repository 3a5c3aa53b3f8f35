// SPDX-License-Identifier: MIT

// Command linalg runs the interactive matrix and vector calculators, or the
// benchmark suite with -bench. See internal/config for flags and LINALG_*
// environment overrides.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/linalg/benchmark"
	"github.com/katalvlaran/linalg/calculator"
	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/logging"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const spinnerRefresh = 100 * time.Millisecond

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("linalg", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	format := logging.FormatJSON
	if cfg.LogConsole {
		format = logging.FormatConsole
	}
	logger, err := logging.New(stderr, cfg.LogLevel, format)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}

	if cfg.Bench {
		return runBench(ctx, cfg, logger, stdout, stderr)
	}

	sess := calculator.NewSession(stdin, stdout,
		calculator.WithLogger(logging.Component(logger, "calculator")),
		calculator.WithPrecision(cfg.Precision),
		calculator.WithBenchmark(func(ctx context.Context, w io.Writer) error {
			rep, err := newSuite(cfg, logger, nil).Run(ctx)
			if _, werr := rep.WriteTo(w); werr != nil && err == nil {
				err = werr
			}
			return err
		}),
	)
	if err := sess.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("calculator session ended")
		fmt.Fprintln(stderr, "Error:", err)
		return exitFailure
	}

	return exitOK
}

func newSuite(cfg config.Config, logger zerolog.Logger, progress func(benchmark.Event)) *benchmark.Suite {
	sizes := benchmark.DefaultSizes()
	if cfg.Quick {
		sizes = benchmark.QuickSizes()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opts := []benchmark.Option{
		benchmark.WithSizes(sizes),
		benchmark.WithSeed(seed),
		benchmark.WithLogger(logging.Component(logger, "benchmark")),
	}
	if progress != nil {
		opts = append(opts, benchmark.WithProgress(progress))
	}

	return benchmark.New(opts...)
}

func runBench(ctx context.Context, cfg config.Config, logger zerolog.Logger, stdout, stderr io.Writer) int {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var progress func(benchmark.Event)
	if !cfg.NoSpinner {
		s := spinner.New(spinner.CharSets[11], spinnerRefresh, spinner.WithWriter(stderr))
		progress = func(e benchmark.Event) {
			s.Lock()
			s.Suffix = fmt.Sprintf(" [%d/%d] %s", e.Index, e.Total, e.Name)
			s.Unlock()
		}
		s.Start()
		defer s.Stop()
	}

	rep, err := newSuite(cfg, logger, progress).Run(ctx)
	if _, werr := rep.WriteTo(stdout); werr != nil {
		logger.Error().Err(werr).Msg("writing benchmark report")
		return exitFailure
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitFailure
	}
	if !rep.Passed() {
		return exitFailure
	}

	return exitOK
}
