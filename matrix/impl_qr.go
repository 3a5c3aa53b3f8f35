// SPDX-License-Identifier: MIT
// Package matrix: QR decomposition by modified Gram-Schmidt.

package matrix

import "github.com/katalvlaran/linalg/numeric"

// QR factors an r×c matrix as A = Q·R with Q r×c and R c×c upper-triangular.
// Implementation:
//   - Stage 1: materialize A as *Dense; allocate Q (r×c) and R (c×c).
//   - Stage 2: for column j, start from v := A[:,j]; for each k < j set
//     R[k,j] = Q[:,k]·v and v -= R[k,j]·Q[:,k] (projections taken against the
//     running residual, i.e. the modified variant).
//   - Stage 3: R[j,j] = ‖v‖; if ‖v‖ < ε the column is rank-deficient: Q[:,j]
//     stays zero and R[j,j] = 0. Otherwise Q[:,j] = v/‖v‖.
//
// Behavior highlights:
//   - Rank deficiency is not an error; the zero column is part of the result.
//   - Q·R reconstructs A for every input (the dropped residual is below ε);
//     QᵀQ = I only for full column rank.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c²), Space O(r·c + c²).
func QR[T numeric.Float](m Matrix[T]) (QRResult[T], error) {
	a, err := asDense(opQR, m)
	if err != nil {
		return QRResult[T]{}, err
	}
	rows, cols := a.r, a.c
	q := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	r := &Dense[T]{r: cols, c: cols, data: make([]T, cols*cols)}

	v := make([]T, rows)
	var (
		i, j, k   int
		dot, norm T
	)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v[i] = a.data[i*cols+j]
		}
		for k = 0; k < j; k++ {
			dot = 0
			for i = 0; i < rows; i++ {
				dot += q.data[i*cols+k] * v[i]
			}
			r.data[k*cols+j] = dot
			for i = 0; i < rows; i++ {
				v[i] -= dot * q.data[i*cols+k]
			}
		}

		norm = 0
		for i = 0; i < rows; i++ {
			norm += v[i] * v[i]
		}
		norm = numeric.Sqrt(norm)
		if numeric.IsNearZero(norm) {
			continue // zero column in Q, R[j,j] = 0
		}
		r.data[j*cols+j] = norm
		for i = 0; i < rows; i++ {
			q.data[i*cols+j] = v[i] / norm
		}
	}

	return QRResult[T]{Q: q, R: r}, nil
}
