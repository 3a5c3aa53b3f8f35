// SPDX-License-Identifier: MIT
// Package matrix: matrix multiplication kernels.
//
// Purpose:
//   - Mul validates operands and dispatches between a direct triple loop and a
//     cache-blocked kernel tiled by BlockSize.
//   - Both kernels add the products of one output cell in ascending k starting
//     from zero, so their results are bit-identical for the same inputs.
//
// Determinism:
//   - Direct: i→j→k. Blocked: ii→jj→kk tiles, then i→j→k inside the tile,
//     with the running sum of a cell carried across kk tiles in the output.
//   - No zero-skipping: every product is added, keeping NaN/Inf propagation
//     identical on both paths.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: materialize both operands as *Dense (no copy when already Dense).
//   - Stage 3: if any of A.Rows, A.Cols, B.Cols exceeds BlockSize use the
//     blocked kernel, otherwise the direct one.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T numeric.Float](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if da.r > BlockSize || da.c > BlockSize || db.c > BlockSize {
		return mulBlocked(da, db), nil
	}

	return mulDirect(da, db), nil
}

// mulDirect is the i→j→k kernel. Shapes are assumed compatible.
func mulDirect[T numeric.Float](a, b *Dense[T]) *Dense[T] {
	n, inner, p := a.r, a.c, b.c
	res := &Dense[T]{r: n, c: p, data: make([]T, n*p)}
	var (
		i, j, k int
		sum     T
		rowA    []T
	)
	for i = 0; i < n; i++ {
		rowA = a.data[i*inner : (i+1)*inner]
		for j = 0; j < p; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += rowA[k] * b.data[k*p+j]
			}
			res.data[i*p+j] = sum
		}
	}

	return res
}

// mulBlocked is the tiled kernel. Tiles are BlockSize square; edge tiles are
// clipped with min. For each output cell the accumulator is seeded from the
// cell itself, so partial sums of successive kk tiles chain in ascending k.
func mulBlocked[T numeric.Float](a, b *Dense[T]) *Dense[T] {
	n, inner, p := a.r, a.c, b.c
	res := &Dense[T]{r: n, c: p, data: make([]T, n*p)}
	var (
		ii, jj, kk       int
		iEnd, jEnd, kEnd int
		i, j, k          int
		sum              T
	)
	for ii = 0; ii < n; ii += BlockSize {
		iEnd = min(ii+BlockSize, n)
		for jj = 0; jj < p; jj += BlockSize {
			jEnd = min(jj+BlockSize, p)
			for kk = 0; kk < inner; kk += BlockSize {
				kEnd = min(kk+BlockSize, inner)
				for i = ii; i < iEnd; i++ {
					for j = jj; j < jEnd; j++ {
						sum = res.data[i*p+j]
						for k = kk; k < kEnd; k++ {
							sum += a.data[i*inner+k] * b.data[k*p+j]
						}
						res.data[i*p+j] = sum
					}
				}
			}
		}
	}

	return res
}

// MulVec computes y = m·x for a column vector given as a slice.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
func MulVec[T numeric.Float](m Matrix[T], x []T) ([]T, error) {
	d, err := asDense(opMul, m)
	if err != nil {
		return nil, err
	}
	if len(x) != d.c {
		return nil, matrixErrorf(opMul, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), d.c, ErrDimensionMismatch))
	}
	y := make([]T, d.r)
	var sum T
	for i := 0; i < d.r; i++ {
		sum = 0
		for k, xv := range x {
			sum += d.data[i*d.c+k] * xv
		}
		y[i] = sum
	}

	return y, nil
}
