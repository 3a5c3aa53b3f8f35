// SPDX-License-Identifier: MIT
// Package matrix: element-wise and broadcast kernels.
//
// The ew* helpers are the shared tight loops behind the statistics
// transforms; ReplaceInfNaN, Clip and AllClose are their public faces.
// Every kernel reads through asDense, so non-Dense inputs are materialized
// once and then take the flat row-major path.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

const (
	opBroadcastSubCols = "broadcastSubCols"
	opBroadcastSubRows = "broadcastSubRows"
	opScaleCols        = "scaleCols"
	opScaleRows        = "scaleRows"
	opReplaceInfNaN    = "ReplaceInfNaN"
	opClip             = "Clip"
	opAllClose         = "AllClose"
)

// ewMap writes f(i, j, x) for every element of src into a new matrix.
func ewMap[T numeric.Float](src *Dense[T], f func(i, j int, x T) T) *Dense[T] {
	out := &Dense[T]{r: src.r, c: src.c, data: make([]T, len(src.data))}
	var i, j, base int
	for i = 0; i < src.r; i++ {
		base = i * src.c
		for j = 0; j < src.c; j++ {
			out.data[base+j] = f(i, j, src.data[base+j])
		}
	}

	return out
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
func ewBroadcastSubCols[T numeric.Float](X Matrix[T], colMeans []T) (*Dense[T], error) {
	d, err := asDense(opBroadcastSubCols, X)
	if err != nil {
		return nil, err
	}
	if len(colMeans) != d.c {
		return nil, matrixErrorf(opBroadcastSubCols, fmt.Errorf("%d means for %d columns: %w", len(colMeans), d.c, ErrDimensionMismatch))
	}

	return ewMap(d, func(_, j int, x T) T { return x - colMeans[j] }), nil
}

// ewBroadcastSubRows computes out[i,j] = X[i,j] - rowMeans[i].
func ewBroadcastSubRows[T numeric.Float](X Matrix[T], rowMeans []T) (*Dense[T], error) {
	d, err := asDense(opBroadcastSubRows, X)
	if err != nil {
		return nil, err
	}
	if len(rowMeans) != d.r {
		return nil, matrixErrorf(opBroadcastSubRows, fmt.Errorf("%d means for %d rows: %w", len(rowMeans), d.r, ErrDimensionMismatch))
	}

	return ewMap(d, func(i, _ int, x T) T { return x - rowMeans[i] }), nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols[T numeric.Float](X Matrix[T], scale []T) (*Dense[T], error) {
	d, err := asDense(opScaleCols, X)
	if err != nil {
		return nil, err
	}
	if len(scale) != d.c {
		return nil, matrixErrorf(opScaleCols, fmt.Errorf("%d factors for %d columns: %w", len(scale), d.c, ErrDimensionMismatch))
	}

	return ewMap(d, func(_, j int, x T) T { return x * scale[j] }), nil
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
func ewScaleRows[T numeric.Float](X Matrix[T], scale []T) (*Dense[T], error) {
	d, err := asDense(opScaleRows, X)
	if err != nil {
		return nil, err
	}
	if len(scale) != d.r {
		return nil, matrixErrorf(opScaleRows, fmt.Errorf("%d factors for %d rows: %w", len(scale), d.r, ErrDimensionMismatch))
	}

	return ewMap(d, func(i, _ int, x T) T { return x * scale[i] }), nil
}

// ReplaceInfNaN returns a copy of X with every NaN or ±Inf replaced by val.
// A non-finite val ⇒ ErrNaNInf.
func ReplaceInfNaN[T numeric.Float](X Matrix[T], val T) (*Dense[T], error) {
	if !numeric.IsFinite(val) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}
	d, err := asDense(opReplaceInfNaN, X)
	if err != nil {
		return nil, err
	}

	return ewMap(d, func(_, _ int, x T) T {
		if numeric.IsFinite(x) {
			return x
		}
		return val
	}), nil
}

// Clip returns a copy of X with every element clamped into [lo, hi].
// Reversed bounds are swapped; non-finite bounds ⇒ ErrNaNInf.
func Clip[T numeric.Float](X Matrix[T], lo, hi T) (*Dense[T], error) {
	if !numeric.IsFinite(lo) || !numeric.IsFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	d, err := asDense(opClip, X)
	if err != nil {
		return nil, err
	}

	return ewMap(d, func(_, _ int, x T) T { return numeric.Clamp(x, lo, hi) }), nil
}

// AllClose reports |a-b| <= atol + rtol·|b| element-wise. Negative
// tolerances are taken by magnitude; non-finite tolerances ⇒ ErrNaNInf.
// Stops at the first violation.
func AllClose[T numeric.Float](a, b Matrix[T], rtol, atol T) (bool, error) {
	if !numeric.IsFinite(rtol) || !numeric.IsFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = numeric.Abs(rtol), numeric.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(opAllClose, a)
	if err != nil {
		return false, err
	}
	db, err := asDense(opAllClose, b)
	if err != nil {
		return false, err
	}
	for k, x := range da.data {
		y := db.data[k]
		if numeric.Abs(x-y) > atol+rtol*numeric.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
