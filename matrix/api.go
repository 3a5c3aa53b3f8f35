// SPDX-License-Identifier: MIT
// Package matrix: factories and thin facades.
//
// Purpose:
//   - Provide intention-revealing constructors (Identity, Zeros, Ones, Random).
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Factories are pure except Random without WithSource, which draws from
//     the process-level source.

package matrix

import "github.com/katalvlaran/linalg/numeric"

// identity builds I_n without validation; n >= 0 is the caller's guarantee.
func identity[T numeric.Float](n int) *Dense[T] {
	id := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n < 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity[T numeric.Float](n int) (*Dense[T], error) {
	if n < 0 {
		_, err := NewDense[T](n, n)

		return nil, matrixErrorf(opIdentity, err)
	}

	return identity[T](n), nil
}

// Zeros returns a rows×cols zero matrix. Alias of NewDense.
func Zeros[T numeric.Float](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// Ones returns a rows×cols matrix filled with 1.
func Ones[T numeric.Float](rows, cols int) (*Dense[T], error) { return NewFilled[T](rows, cols, 1) }

// Random returns a rows×cols matrix with uniform entries in [lo, hi).
// Pass WithSource for a reproducible matrix.
func Random[T numeric.Float](rows, cols int, lo, hi T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	m.FillRandom(lo, hi, opts...)

	return m, nil
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T numeric.Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T numeric.Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return identity[T](m.Rows()), nil
}
