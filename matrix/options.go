// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for factories, iterative kernels
// and the formatter. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior unless a caller opts into the process-level
//     random source (Random/FillRandom without WithSource).
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"math"
	"math/rand/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// BlockSize is the square tile edge of the blocked multiplication kernel.
	// Operands with any dimension above it take the tiled path.
	BlockSize = 64

	// DefaultMaxIterations caps the unshifted QR iteration of Eigenvalues and
	// is the floor of the EigenSym rotation cap.
	DefaultMaxIterations = 1000

	// jacobiRotationFactor scales the EigenSym rotation cap with n².
	jacobiRotationFactor = 10

	// DefaultSymmetricTolerance is the floor of the EigenSym symmetry check and
	// off-diagonal stopping threshold.
	DefaultSymmetricTolerance = 1e-9

	// DefaultPrecision is the number of decimals rendered by String/Text.
	DefaultPrecision = 6

	// unsetTolerance marks "derive the tolerance from the element type".
	unsetTolerance = -1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSourceNil        = "matrix: WithSource: source must be non-nil"
	panicMaxIterInvalid   = "matrix: WithMaxIterations: n must be > 0"
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	src       *rand.Rand // nil ⇒ process-level source
	maxIter   int        // 0 ⇒ per-algorithm default
	tol       float64    // unsetTolerance ⇒ type-derived default
	precision int        // DefaultPrecision
}

// WithSource injects the random source used by Random and FillRandom.
// Tests requiring determinism pass a seeded source, e.g.
// rand.New(rand.NewPCG(1, 2)).
//
// Notes:
//   - *rand.Rand is not safe for concurrent use; share it across goroutines
//     only with external locking.
func WithSource(src *rand.Rand) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.src = src }
}

// WithMaxIterations overrides the iteration cap of Eigenvalues (QR iteration,
// default DefaultMaxIterations) and EigenSym (Jacobi rotations, default
// max(DefaultMaxIterations, 10·n²)).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTolerance overrides the convergence threshold of the iterative kernels.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that stores it.
//
// Notes:
//   - Eigenvalues compares it against Σ|off-diagonal|; EigenSym against the
//     largest |off-diagonal| and the symmetry defect.
//   - Without this option Eigenvalues uses 100·ε(T) and EigenSym uses
//     max(DefaultSymmetricTolerance, 100·ε(T)).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithPrecision sets the number of decimals used by Text/Print.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// gatherOptions applies user-provided setters on top of documented defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       unsetTolerance,
		precision: DefaultPrecision,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// iterations returns the user cap or def when none was set.
func (o Options) iterations(def int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return def
}

// tolerance returns the user tolerance or def when none was set.
func (o Options) tolerance(def float64) float64 {
	if o.tol != unsetTolerance {
		return o.tol
	}

	return def
}

// uniform draws from [0, 1) using the configured source.
func (o Options) uniform() float64 {
	if o.src != nil {
		return o.src.Float64()
	}

	return rand.Float64()
}
