// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests match them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for invalid Option arguments.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with matrixErrorf(op, err) so the surface reads "Mul: matrix: dimension
// mismatch" while errors.Is still matches the sentinel.
//
// Non-square input to a square-only operation (Determinant, Inverse, Trace,
// LU, Eigenvalues) is reported as ErrDimensionMismatch; the library does not
// keep a separate "unsupported operation" kind for matrices.

var (
	// ErrInvalidDimensions is returned when a requested shape has a negative
	// extent, or a flat literal does not hold rows*cols elements.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes (Add/Sub with
	// different shapes, Mul with a.Cols != b.Rows, ragged literal rows) or a
	// non-square matrix passed to a square-only operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when LU elimination meets a pivot below machine
	// epsilon (no pivoting), or when Inverse finds |det| below machine epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAsymmetry signals that EigenSym received a matrix that is not
	// symmetric within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrEigenFailed indicates that the Jacobi routine did not drive the
	// off-diagonal below tolerance within the iteration cap.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNaNInf is returned when a replacement value, clip bound or tolerance
	// is NaN or ±Inf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange.
var ErrIndexOutOfRange = ErrOutOfRange
