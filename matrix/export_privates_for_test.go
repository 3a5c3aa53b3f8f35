// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linalg/numeric"

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the two multiplication kernels so tests can compare them on the
//     same inputs regardless of the BlockSize dispatch in Mul.
//   - Expose the options accessors to assert defaults.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.

// MulDirect_TestOnly forwards to the i→j→k kernel.
func MulDirect_TestOnly[T numeric.Float](a, b *Dense[T]) *Dense[T] {
	return mulDirect(a, b)
}

// MulBlocked_TestOnly forwards to the tiled kernel.
func MulBlocked_TestOnly[T numeric.Float](a, b *Dense[T]) *Dense[T] {
	return mulBlocked(a, b)
}

// OptionsSnapshot is a test-facing copy of the resolved options.
type OptionsSnapshot struct {
	HasSource     bool
	MaxIterations int
	Tolerance     float64
	Precision     int
}

// GatherOptionsSnapshot_TestOnly resolves opts against the defaults of an
// algorithm with iteration default defIter and tolerance default defTol.
func GatherOptionsSnapshot_TestOnly(defIter int, defTol float64, opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		HasSource:     o.src != nil,
		MaxIterations: o.iterations(defIter),
		Tolerance:     o.tolerance(defTol),
		Precision:     o.precision,
	}
}
