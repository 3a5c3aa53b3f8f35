// SPDX-License-Identifier: MIT

// Package numeric - element-type capability shared by matrix and vector.
//
// Purpose:
//   - Define the Float constraint every container is parameterized over.
//   - Provide the machine epsilon of the instantiated type and the two
//     derived tolerances used across the library (equality, convergence).
//   - Offer small generic wrappers over package math so kernels stay generic.
//
// Determinism:
//   - All helpers are pure; no global state.
//
// AI-Hints:
//   - Instantiate containers with float64 unless memory bandwidth matters;
//     float32 widens every tolerance by a factor of 2^29.
package numeric

import "math"

// Float is the numeric capability of container elements: closed under
// + - * /, ordered, and equipped with a machine epsilon and a square root.
type Float interface {
	~float32 | ~float64
}

// Machine epsilon for the two IEEE-754 binary formats (distance from 1.0 to
// the next representable value).
const (
	Epsilon32 = 1.1920928955078125e-07 // 2^-23
	Epsilon64 = 2.220446049250313e-16  // 2^-52
)

// Tolerance multipliers applied on top of Epsilon.
const (
	EqualFactor       = 10
	ConvergenceFactor = 100
)

// probe64 is a variable so the precision probe in Epsilon is evaluated in T
// at run time rather than folded as an untyped constant.
var probe64 = Epsilon64

// Epsilon returns the machine epsilon of T.
// Implementation:
//   - Stage 1: add 2^-52 to 1 in T; only a 64-bit mantissa keeps the difference.
//   - Stage 2: return the matching constant converted to T.
//
// Complexity:
//   - Time O(1), Space O(1).
func Epsilon[T Float]() T {
	one := T(1)
	if one+T(probe64) != one {
		return T(Epsilon64)
	}

	return T(Epsilon32)
}

// EqualTolerance is the absolute per-element tolerance used by container
// equality: 10·ε(T).
func EqualTolerance[T Float]() T { return EqualFactor * Epsilon[T]() }

// ConvergenceTolerance is the default stopping threshold of iterative
// eigenvalue routines: 100·ε(T).
func ConvergenceTolerance[T Float]() T { return ConvergenceFactor * Epsilon[T]() }

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sqrt returns √x computed in float64 and narrowed back to T.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Acos returns arccos(x) in radians.
func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

// Clamp limits x to [lo, hi]. The caller guarantees lo <= hi.
func Clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// IsNearZero reports whether |x| < ε(T), the singularity / zero-vector guard
// shared by all kernels.
func IsNearZero[T Float](x T) bool { return Abs(x) < Epsilon[T]() }

// NearlyEqual reports |a-b| <= tol. NaN never compares equal.
func NearlyEqual[T Float](a, b, tol T) bool { return Abs(a-b) <= tol }

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
