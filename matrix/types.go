// SPDX-License-Identifier: MIT

// Package matrix: public contracts and result types.
// This file contains ONLY domain-facing types: the Matrix interface every
// kernel accepts and the explicit result records of the decompositions.
package matrix

import "github.com/katalvlaran/linalg/numeric"

// Matrix represents a two-dimensional mutable array of T values.
// Kernels accept any implementation and unlock flat-slice fast paths when the
// concrete type is *Dense[T].
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T numeric.Float] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix[T]
}

// LUResult holds a Doolittle factorization A = L·U.
// L is unit-lower-triangular and U is upper-triangular, both n×n.
type LUResult[T numeric.Float] struct {
	L *Dense[T]
	U *Dense[T]
}

// QRResult holds a Gram-Schmidt factorization A = Q·R of an r×c matrix.
// Q is r×c with orthonormal (or zero, for rank-deficient) columns; R is c×c
// upper-triangular.
type QRResult[T numeric.Float] struct {
	Q *Dense[T]
	R *Dense[T]
}

// EigenEstimate is the detailed outcome of Eigenvalues.
//   - Values: one estimate per order, in diagonal order for n ≥ 3.
//   - Iterations: QR iterations performed (0 for the closed forms n ≤ 2).
//   - Converged: false when the iteration cap was exhausted before the
//     off-diagonal mass dropped below tolerance; Values then hold the
//     best-effort diagonal.
type EigenEstimate[T numeric.Float] struct {
	Values     []numeric.Complex[T]
	Iterations int
	Converged  bool
}

// EigenDecomposition holds the spectrum of a symmetric matrix:
// A·Vectors[:,k] = Values[k]·Vectors[:,k], Vectors orthogonal.
type EigenDecomposition[T numeric.Float] struct {
	Values  []T
	Vectors *Dense[T]
}
