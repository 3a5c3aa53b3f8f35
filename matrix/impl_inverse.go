// SPDX-License-Identifier: MIT
// Package matrix: inverse (Gauss-Jordan with partial pivoting) and adjugate.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Inverse returns A⁻¹ of a square matrix.
// Implementation:
//   - Stage 1 (Gate): det := Determinant(A); |det| < ε ⇒ ErrSingular.
//   - Stage 2 (Augment): build the n×2n table [A | I].
//   - Stage 3 (Eliminate): for each column k pick the row p >= k with the
//     largest |aug[p,k]|, swap it into row k, scale row k so the pivot is 1,
//     then clear column k from every other row.
//   - Stage 4 (Extract): the right half is A⁻¹.
//
// Behavior highlights:
//   - The determinant gate runs first, so for n >= 4 an LU pivot failure
//     inside Determinant surfaces as ErrSingular even though elimination
//     itself pivots.
//   - Order 0 returns the empty matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T numeric.Float](m Matrix[T]) (*Dense[T], error) {
	a, err := asSquareDense(opInverse, m)
	if err != nil {
		return nil, err
	}
	det, err := Determinant[T](a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if numeric.IsNearZero(det) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", float64(det), ErrSingular))
	}

	n := a.r
	w := 2 * n
	aug := make([]T, n*w)
	var i, j, k int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], a.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	var (
		p             int
		best, v       T
		pivot, factor T
		rowK, rowI    []T
	)
	for k = 0; k < n; k++ {
		// partial pivoting: largest |aug[i,k]| for i >= k, first wins on ties
		p, best = k, numeric.Abs(aug[k*w+k])
		for i = k + 1; i < n; i++ {
			if v = numeric.Abs(aug[i*w+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return nil, matrixErrorf(opInverse, fmt.Errorf("zero pivot in column %d: %w", k, ErrSingular))
		}
		if p != k {
			swapRows(aug, w, p, k)
		}

		rowK = aug[k*w : (k+1)*w]
		pivot = rowK[k]
		for j = 0; j < w; j++ {
			rowK[j] /= pivot
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			rowI = aug[i*w : (i+1)*w]
			factor = rowI[k]
			if factor == 0 {
				continue
			}
			for j = 0; j < w; j++ {
				rowI[j] -= factor * rowK[j]
			}
		}
	}

	inv := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// swapRows exchanges rows a and b of a row-major table of width w.
func swapRows[T numeric.Float](data []T, w, a, b int) {
	ra, rb := data[a*w:(a+1)*w], data[b*w:(b+1)*w]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Adjugate returns adj(A) = Cᵀ where C[i,j] = (-1)^(i+j)·det(minor(i,j)).
// Implementation:
//   - order 0 ⇒ empty; order 1 ⇒ [[1]].
//   - minors are evaluated by pivoted Gaussian elimination, so the result does
//     not depend on the pivot layout of A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n⁵) (n² minors of O(n³) each), Space O(n²).
func Adjugate[T numeric.Float](m Matrix[T]) (*Dense[T], error) {
	a, err := asSquareDense(opAdjugate, m)
	if err != nil {
		return nil, err
	}
	n := a.r
	adj := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	if n == 1 {
		adj.data[0] = 1

		return adj, nil
	}

	minor := make([]T, (n-1)*(n-1))
	var (
		i, j, r, c, idx int
		cof             T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			idx = 0
			for r = 0; r < n; r++ {
				if r == i {
					continue
				}
				for c = 0; c < n; c++ {
					if c == j {
						continue
					}
					minor[idx] = a.data[r*n+c]
					idx++
				}
			}
			cof = detGauss(minor, n-1)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			adj.data[j*n+i] = cof // transposed store
		}
	}

	return adj, nil
}

// detGauss returns the determinant of an order-n row-major table by Gaussian
// elimination with partial pivoting. data is overwritten.
func detGauss[T numeric.Float](data []T, n int) T {
	det := T(1)
	var (
		i, j, k, p    int
		best, v       T
		factor, pivot T
	)
	for k = 0; k < n; k++ {
		p, best = k, numeric.Abs(data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = numeric.Abs(data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return 0
		}
		if p != k {
			swapRows(data, n, p, k)
			det = -det
		}
		pivot = data[k*n+k]
		det *= pivot
		for i = k + 1; i < n; i++ {
			factor = data[i*n+k] / pivot
			for j = k; j < n; j++ {
				data[i*n+j] -= factor * data[k*n+j]
			}
		}
	}

	return det
}
