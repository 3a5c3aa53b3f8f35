// SPDX-License-Identifier: MIT

// Package vector: functional options for random fills and the formatter.
// Option constructors panic on nonsensical values (programmer error).
package vector

import "math/rand/v2"

// DefaultPrecision is the number of decimals rendered by String/Print.
const DefaultPrecision = 6

const (
	panicSourceNil        = "vector: WithSource: source must be non-nil"
	panicPrecisionInvalid = "vector: WithPrecision: precision must be >= 0"
)

// Option mutates internal options; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	src       *rand.Rand // nil ⇒ process-level source
	precision int
}

// WithSource injects the random source used by Random and FillRandom.
func WithSource(src *rand.Rand) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.src = src }
}

// WithPrecision sets the number of decimals used by Print.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

func gatherOptions(user ...Option) Options {
	o := Options{precision: DefaultPrecision}
	for _, set := range user {
		set(&o)
	}

	return o
}

// uniform draws from [0, 1) using the configured source.
func (o Options) uniform() float64 {
	if o.src != nil {
		return o.src.Float64()
	}

	return rand.Float64()
}
