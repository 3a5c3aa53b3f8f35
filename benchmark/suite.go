// SPDX-License-Identifier: MIT

// Package benchmark times the core matrix and vector operations over lists
// of sizes, derives throughput where it is meaningful and runs a set of
// known-value accuracy checks.
//
// Determinism:
//   - Operands come from a seeded *rand.Rand, so two suites with the same
//     seed and sizes time identical inputs.
//   - The clock is injectable; tests drive it manually.
//
// Cancellation:
//   - Run checks ctx between cases. A single case is never interrupted.
package benchmark

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// Sizes lists the operand sizes per group. An empty list skips the group.
type Sizes struct {
	Mul       []int
	Det       []int
	Eigen     []int
	Inverse   []int
	LU        []int
	QR        []int
	VectorOps []int
	Dot       []int
	// CrossOps is the number of 3-D cross products timed as one case; 0 skips.
	CrossOps int
}

// DefaultSizes returns the full-run size lists.
func DefaultSizes() Sizes {
	return Sizes{
		Mul:       []int{10, 50, 100, 200, 500, 1000},
		Det:       []int{5, 10, 20, 50, 100, 200},
		Eigen:     []int{5, 10, 20, 50, 100},
		Inverse:   []int{5, 10, 20, 50, 100, 200},
		LU:        []int{10, 50, 100, 200, 500},
		QR:        []int{10, 50, 100, 200},
		VectorOps: []int{1_000, 10_000, 100_000, 1_000_000},
		Dot:       []int{1_000, 10_000, 100_000, 1_000_000, 10_000_000},
		CrossOps:  10_000_000,
	}
}

// QuickSizes returns small lists for smoke runs.
func QuickSizes() Sizes {
	return Sizes{
		Mul:       []int{10, 50, 100},
		Det:       []int{5, 10, 20},
		Eigen:     []int{5, 10},
		Inverse:   []int{5, 10, 20},
		LU:        []int{10, 50},
		QR:        []int{10, 50},
		VectorOps: []int{1_000, 10_000},
		Dot:       []int{1_000, 100_000},
		CrossOps:  100_000,
	}
}

// Event reports progress before a case starts.
type Event struct {
	Group string
	Name  string
	Index int // 1-based position among all cases
	Total int
}

// Option configures a Suite.
type Option func(*Suite)

// WithSizes replaces the size lists.
func WithSizes(s Sizes) Option { return func(su *Suite) { su.sizes = s } }

// WithSeed seeds the operand generator.
func WithSeed(seed uint64) Option {
	return func(su *Suite) { su.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(su *Suite) {
		if now != nil {
			su.now = now
		}
	}
}

// WithLogger attaches a logger; each case emits one debug event.
func WithLogger(l zerolog.Logger) Option { return func(su *Suite) { su.log = l } }

// WithProgress installs a callback invoked before every case.
func WithProgress(fn func(Event)) Option { return func(su *Suite) { su.progress = fn } }

// Suite is a configured benchmark run. It is not safe for concurrent use.
type Suite struct {
	sizes    Sizes
	rng      *rand.Rand
	now      func() time.Time
	log      zerolog.Logger
	progress func(Event)
}

// New returns a suite with DefaultSizes, seed 1 and the wall clock.
func New(opts ...Option) *Suite {
	su := &Suite{
		sizes: DefaultSizes(),
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	WithSeed(1)(su)
	for _, opt := range opts {
		opt(su)
	}

	return su
}

// Run executes every case then the accuracy checks. On cancellation the
// partial report is returned together with ctx.Err().
func (su *Suite) Run(ctx context.Context) (Report, error) {
	cases := su.cases()
	rep := Report{Platform: DetectPlatform(), Started: su.now()}

	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			rep.Total = su.now().Sub(rep.Started)
			su.log.Warn().Err(err).Int("done", i).Int("total", len(cases)).Msg("benchmark cancelled")
			return rep, err
		}
		if su.progress != nil {
			su.progress(Event{Group: c.group, Name: c.name, Index: i + 1, Total: len(cases)})
		}
		res := su.measure(c)
		su.log.Debug().
			Str("group", res.Group).
			Str("case", res.Name).
			Dur("elapsed", res.Elapsed).
			Float64("throughput", res.Throughput).
			Err(res.Err).
			Msg("benchmark case finished")
		rep.Results = append(rep.Results, res)
	}

	rep.Checks = AccuracyChecks()
	rep.Total = su.now().Sub(rep.Started)
	su.log.Info().
		Int("cases", len(rep.Results)).
		Bool("accuracy", rep.Passed()).
		Dur("total", rep.Total).
		Msg("benchmark suite complete")

	return rep, nil
}

func (su *Suite) measure(c benchCase) Result {
	res := Result{Group: c.group, Name: c.name, Size: c.size, Unit: c.unit}
	body, err := c.prepare(su.rng)
	if err != nil {
		res.Err = err
		return res
	}
	start := su.now()
	res.Err = body()
	res.Elapsed = su.now().Sub(start)
	if res.Err == nil && c.work > 0 && res.Elapsed > 0 {
		res.Throughput = c.work / res.Elapsed.Seconds() / c.scale
	}

	return res
}
