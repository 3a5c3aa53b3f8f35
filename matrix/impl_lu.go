// SPDX-License-Identifier: MIT
// Package matrix: LU decomposition and determinant.
//
// Purpose:
//   - LU: Doolittle elimination WITHOUT pivoting. A pivot below machine
//     epsilon is reported as ErrSingular even when a row exchange would have
//     rescued it; callers needing a stable solve should use Inverse, which pivots.
//   - Determinant: closed forms up to order 3, then the product of U's diagonal.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// LU factors a square matrix as A = L·U.
// Implementation:
//   - Stage 1: validate square; L := I, U := copy(A).
//   - Stage 2: for each pivot column k in 0..n-2, check |U[k,k]| >= ε, then for
//     every row i > k store factor = U[i,k]/U[k,k] in L[i,k] and subtract
//     factor·(row k) from row i over columns >= k.
//
// Behavior highlights:
//   - The last diagonal entry U[n-1,n-1] is never a pivot and is not checked,
//     so a singular A can factor successfully with U[n-1,n-1] == 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (tiny pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU[T numeric.Float](m Matrix[T]) (LUResult[T], error) {
	a, err := asSquareDense(opLU, m)
	if err != nil {
		return LUResult[T]{}, err
	}
	n := a.r
	l := identity[T](n)
	u := a.Copy()

	var (
		i, j, k       int
		pivot, factor T
		rowK, rowI    []T
	)
	for k = 0; k < n-1; k++ {
		pivot = u.data[k*n+k]
		if numeric.IsNearZero(pivot) {
			return LUResult[T]{}, matrixErrorf(opLU, fmt.Errorf("pivot U[%d,%d]=%g: %w", k, k, float64(pivot), ErrSingular))
		}
		rowK = u.data[k*n : (k+1)*n]
		for i = k + 1; i < n; i++ {
			rowI = u.data[i*n : (i+1)*n]
			factor = rowI[k] / pivot
			l.data[i*n+k] = factor
			rowI[k] = 0
			for j = k + 1; j < n; j++ {
				rowI[j] -= factor * rowK[j]
			}
		}
	}

	return LUResult[T]{L: l, U: u}, nil
}

// Determinant returns det(A) of a square matrix.
// Implementation:
//   - order 0: 1 (empty product); order 1: a; order 2: ad − bc;
//     order 3: cofactor expansion along the first row;
//     order ≥ 4: Π U[i,i] from LU.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrSingular for order ≥ 4 when LU meets a tiny pivot; the matrix may or
//     may not actually be singular, since LU does not pivot.
func Determinant[T numeric.Float](m Matrix[T]) (T, error) {
	a, err := asSquareDense(opDeterminant, m)
	if err != nil {
		return 0, err
	}
	d := a.data
	switch a.r {
	case 0:
		return 1, nil
	case 1:
		return d[0], nil
	case 2:
		return d[0]*d[3] - d[1]*d[2], nil
	case 3:
		return det3(d), nil
	}

	lu, err := LU[T](a)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := a.r
	det := T(1)
	for i := 0; i < n; i++ {
		det *= lu.U.data[i*n+i]
	}

	return det, nil
}

// det3 expands a row-major 3×3 along its first row.
func det3[T numeric.Float](d []T) T {
	return d[0]*(d[4]*d[8]-d[5]*d[7]) -
		d[1]*(d[3]*d[8]-d[5]*d[6]) +
		d[2]*(d[3]*d[7]-d[4]*d[6])
}
