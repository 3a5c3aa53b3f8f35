// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or a typed-nil *Dense hidden in it.
func isNil[T numeric.Float](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense[T])

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix for a nil interface or a nil *Dense.
func ValidateNotNil[T numeric.Float](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape checks a and b have identical (rows, cols).
// Assumes both are non-nil.
func ValidateSameShape[T numeric.Float](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks rows == cols. Assumes m is non-nil.
func ValidateSquare[T numeric.Float](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d is not square: %w", m.Rows(), m.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape(a,b).
func ValidateBinarySameShape[T numeric.Float](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is NotNil(m) → Square(m).
func ValidateSquareNonNil[T numeric.Float](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible is NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible[T numeric.Float](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| <= tol over the strict upper
// triangle, after the square/nil checks. A negative tol is treated as |tol|.
// Complexity: O(n²).
func ValidateSymmetric[T numeric.Float](m Matrix[T], tol T) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol = numeric.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji T
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if numeric.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("|A[%d,%d]-A[%d,%d]| > %g: %w", i, j, j, i, float64(tol), ErrAsymmetry))
			}
		}
	}

	return nil
}
