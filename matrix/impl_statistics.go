// SPDX-License-Identifier: MIT
// Package matrix: column/row statistics built on the ew* kernels and the
// canonical Mul/Transpose/Scale.
//
// Exposed API:
//   - CenterColumns(X)   -> (Xc, means)         subtract per-column mean
//   - CenterRows(X)      -> (Xc, means)         subtract per-row mean
//   - NormalizeRowsL1(X) -> (Y, norms)          zero rows unchanged
//   - NormalizeRowsL2(X) -> (Y, norms)          zero rows unchanged
//   - Covariance(X)      -> (Cov, means)        (Xcᵀ·Xc)/(r-1)
//   - Correlation(X)     -> (Corr, means, stds) Pearson; zero-std column ⇒ zero row/column
//
// Zero-size inputs: centering and normalization return an empty copy;
// Covariance/Correlation of a c=0 matrix is 0×0. Sample statistics need
// r >= 2, else ErrDimensionMismatch.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

const (
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
)

// columnMeans returns Σ_i X[i,j] / r, accumulated in i→j order.
func columnMeans[T numeric.Float](d *Dense[T]) []T {
	means := make([]T, d.c)
	if d.r == 0 {
		return means
	}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	inv := 1 / T(d.r)
	for j = range means {
		means[j] *= inv
	}

	return means
}

// rowReduce applies f to each row slice.
func rowReduce[T numeric.Float](d *Dense[T], f func(row []T) T) []T {
	out := make([]T, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = f(d.data[i*d.c : (i+1)*d.c])
	}

	return out
}

// CenterColumns subtracts the per-column mean from every element.
// Complexity: O(r*c).
func CenterColumns[T numeric.Float](X Matrix[T]) (*Dense[T], []T, error) {
	d, err := asDense(opCenterColumns, X)
	if err != nil {
		return nil, nil, err
	}
	means := columnMeans(d)
	Xc, err := ewBroadcastSubCols[T](d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// CenterRows subtracts the per-row mean from every element.
func CenterRows[T numeric.Float](X Matrix[T]) (*Dense[T], []T, error) {
	d, err := asDense(opCenterRows, X)
	if err != nil {
		return nil, nil, err
	}
	means := rowReduce(d, func(row []T) T {
		if len(row) == 0 {
			return 0
		}
		var s T
		for _, x := range row {
			s += x
		}
		return s / T(len(row))
	})
	Xc, err := ewBroadcastSubRows[T](d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return Xc, means, nil
}

// NormalizeRowsL1 scales each row to unit L1 norm Σ|x|. Rows with norm 0
// are left unchanged. Returns the original norms.
func NormalizeRowsL1[T numeric.Float](X Matrix[T]) (*Dense[T], []T, error) {
	return normalizeRows(opNormalizeRowsL1, X, func(row []T) T {
		var s T
		for _, x := range row {
			s += numeric.Abs(x)
		}
		return s
	})
}

// NormalizeRowsL2 scales each row to unit Euclidean norm. Rows with norm 0
// are left unchanged. Returns the original norms.
func NormalizeRowsL2[T numeric.Float](X Matrix[T]) (*Dense[T], []T, error) {
	return normalizeRows(opNormalizeRowsL2, X, func(row []T) T {
		var s T
		for _, x := range row {
			s += x * x
		}
		return numeric.Sqrt(s)
	})
}

func normalizeRows[T numeric.Float](tag string, X Matrix[T], norm func(row []T) T) (*Dense[T], []T, error) {
	d, err := asDense(tag, X)
	if err != nil {
		return nil, nil, err
	}
	norms := rowReduce(d, norm)
	scale := make([]T, d.r)
	for i, n := range norms {
		scale[i] = 1
		if n > 0 {
			scale[i] = 1 / n
		}
	}
	Y, err := ewScaleRows[T](d, scale)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return Y, norms, nil
}

// Covariance returns the c×c sample covariance of the columns of X,
// (Xcᵀ·Xc)/(r-1), and the column means. The result is symmetric with the
// column variances on the diagonal.
// Complexity: O(r*c²).
func Covariance[T numeric.Float](X Matrix[T]) (*Dense[T], []T, error) {
	Xc, means, err := sampleCentered(opCovariance, X)
	if err != nil {
		return nil, nil, err
	}
	if Xc == nil {
		return &Dense[T]{}, means, nil
	}
	cov, err := gram(opCovariance, Xc)
	if err != nil {
		return nil, nil, err
	}

	return cov, means, nil
}

// Correlation returns the c×c Pearson correlation of the columns of X, the
// column means and the sample standard deviations. A column with zero
// deviation yields a zero row and column (diagonal 0, not 1).
func Correlation[T numeric.Float](X Matrix[T]) (*Dense[T], []T, []T, error) {
	Xc, means, err := sampleCentered(opCorrelation, X)
	if err != nil {
		return nil, nil, nil, err
	}
	if Xc == nil {
		return &Dense[T]{}, means, []T{}, nil
	}

	r, c := Xc.r, Xc.c
	stds := make([]T, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			stds[j] += Xc.data[base+j] * Xc.data[base+j]
		}
	}
	invStd := make([]T, c)
	inv := 1 / T(r-1)
	for j = range stds {
		stds[j] = numeric.Sqrt(stds[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1 / stds[j]
		}
	}

	Z, err := ewScaleCols[T](Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	corr, err := gram(opCorrelation, Z)
	if err != nil {
		return nil, nil, nil, err
	}

	return corr, means, stds, nil
}

// sampleCentered validates r >= 2 and centers the columns. For c == 0 it
// returns a nil matrix and no error.
func sampleCentered[T numeric.Float](tag string, X Matrix[T]) (*Dense[T], []T, error) {
	d, err := asDense(tag, X)
	if err != nil {
		return nil, nil, err
	}
	if d.c == 0 {
		return nil, []T{}, nil
	}
	if d.r < 2 {
		return nil, nil, matrixErrorf(tag, fmt.Errorf("%d observations, need at least 2: %w", d.r, ErrDimensionMismatch))
	}
	Xc, means, err := CenterColumns[T](d)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return Xc, means, nil
}

// gram returns (Aᵀ·A)/(r-1).
func gram[T numeric.Float](tag string, A *Dense[T]) (*Dense[T], error) {
	At, err := Transpose[T](A)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	G, err := Mul[T](At, A)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return G.ScaleInPlace(1 / T(A.r-1)), nil
}
