// SPDX-License-Identifier: MIT

// Package calculator implements the interactive text calculators of the
// linalg binary: a numbered menu where each entry reads operands, runs one
// matrix or vector operation, prints the result and the elapsed time.
//
// A Session is driven by whitespace-separated tokens from an io.Reader, so
// scripted input ("2 2 1 2 3 4 0") works the same as a terminal.
//
// Errors:
//   - Library errors (singular matrix, zero vector, ...) are printed as
//     "Error: <message>" and the menu continues.
//   - Malformed tokens end the session with an error wrapping ErrInvalidInput.
//   - EOF ends the session cleanly.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidInput is returned when a token cannot be parsed as the number a
// prompt asked for.
var ErrInvalidInput = errors.New("calculator: invalid input")

// DefaultPrecision is the number of decimals used for printed results.
const DefaultPrecision = 6

// MaxDimension bounds every size read from input.
const MaxDimension = 1024

// BenchFunc runs the benchmark suite and writes its report to w.
type BenchFunc func(ctx context.Context, w io.Writer) error

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger; one debug event is emitted per operation.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithPrecision sets the printed decimals. Negative values are ignored.
func WithPrecision(p int) Option {
	return func(s *Session) {
		if p >= 0 {
			s.precision = p
		}
	}
}

// WithClock replaces time.Now for elapsed-time reporting.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBenchmark installs the handler of menu entry 9.
func WithBenchmark(fn BenchFunc) Option {
	return func(s *Session) { s.bench = fn }
}

// Session is one interactive run. It is not safe for concurrent use.
type Session struct {
	in        *tokenReader
	out       io.Writer
	log       zerolog.Logger
	precision int
	now       func() time.Time
	bench     BenchFunc
}

// NewSession binds a session to in and out.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:        newTokenReader(in),
		out:       out,
		log:       zerolog.Nop(),
		precision: DefaultPrecision,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type entry struct {
	title string
	run   func(ctx context.Context) error
}

func (s *Session) entries() map[int]entry {
	return map[int]entry{
		1: {"Matrix Multiplication Calculator", s.multiply},
		2: {"Determinant Calculator", s.determinant},
		3: {"Eigenvalue Calculator", s.eigenvalues},
		4: {"Matrix Inverse Calculator", s.inverse},
		5: {"Vector Dot Product Calculator", s.dot},
		6: {"Vector Cross Product Calculator", s.cross},
		7: {"LU Decomposition", s.lu},
		8: {"QR Decomposition", s.qr},
		9: {"Performance Benchmark Suite", s.benchmark},
	}
}

// Run shows the menu until the user picks 0, the input ends or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	entries := s.entries()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu(entries)

		choice, err := s.in.readInt()
		if errors.Is(err, io.EOF) {
			s.println()
			return nil
		}
		if err != nil {
			return err
		}
		if choice == 0 {
			s.println("\nThank you for using the linear algebra calculator!")
			return nil
		}

		e, ok := entries[choice]
		if !ok {
			s.println("\nInvalid choice! Please try again.")
			continue
		}
		s.printf("\n--- %s ---\n", e.title)

		start := s.now()
		err = e.run(ctx)
		s.log.Debug().
			Int("choice", choice).
			Str("op", e.title).
			Dur("elapsed", s.now().Sub(start)).
			Err(err).
			Msg("calculator entry finished")

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			s.println()
			return nil
		case errors.Is(err, ErrInvalidInput), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			s.printf("\nError: %v\n", err)
		}
		s.println()
	}
}

func (s *Session) printMenu(entries map[int]entry) {
	const rule = "==============================================="
	s.println(rule)
	s.println("      DENSE LINEAR ALGEBRA CALCULATOR")
	s.println(rule)
	for i := 1; i <= len(entries); i++ {
		s.printf("%d. %s\n", i, entries[i].title)
	}
	s.println("0. Exit")
	s.println(rule)
	s.printf("Enter your choice: ")
}

func (s *Session) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

func (s *Session) println(args ...any) { fmt.Fprintln(s.out, args...) }

// elapsed prints the time since start in the given unit.
func (s *Session) elapsed(start time.Time, unit time.Duration) {
	d := s.now().Sub(start)
	name := "microseconds"
	if unit == time.Nanosecond {
		name = "nanoseconds"
	}
	s.printf("\nComputation time: %d %s\n", d/unit, name)
}
