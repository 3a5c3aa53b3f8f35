// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scaling, transpose, trace and
// approximate equality. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Define operation tags and the shared error wrapper.
//   - Provide the element-wise kernels with a *Dense fast path and a generic
//     At/Set fallback that visits cells in the same i→j order.
//
// Notes:
//   - Multiplication, decompositions and eigen routines live in their own
//     impl_*.go files; they share matrixErrorf and the op tags declared here.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opAdjugate    = "Adjugate"
	opLU          = "LU"
	opQR          = "QR"
	opEigenvalues = "Eigenvalues"
	opEigenSym    = "EigenSym"
	opAddInPlace  = "AddInPlace"
	opSubInPlace  = "SubInPlace"
	opIdentity    = "Identity"
	opRandom      = "Random"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Behavior highlights:
//   - Keeps a stable "Op: underlying" shape, e.g. "Mul: ValidateMulCompatible: ...".
//   - errors.Is still matches the sentinel at the bottom of the chain.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub is the shared kernel of Add and Sub: C = A + sign·B.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: If both are *Dense, one flat loop; otherwise i→j via At/Set.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T numeric.Float](a, b Matrix[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T numeric.Float](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub[T numeric.Float](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Inputs are never mutated; alpha = 0 yields an explicit zero matrix of the same shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T numeric.Float](m Matrix[T], alpha T) (*Dense[T], error) {
	src, err := asDense(opScale, m)
	if err != nil {
		return nil, err
	}
	res := &Dense[T]{r: src.r, c: src.c, data: make([]T, len(src.data))}
	for idx, v := range src.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: *Dense uses contiguous slice mapping; else generic i→j loop.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T numeric.Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] of a square matrix; 0 for the empty matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
func Trace[T numeric.Float](m Matrix[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var (
		sum T
		v   T
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// Equal reports whether a and b have the same shape and every pair of
// elements differs by at most 10·ε(T). Nil operands and unreadable cells
// compare unequal.
func Equal[T numeric.Float](a, b Matrix[T]) bool {
	if isNil(a) || isNil(b) || a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	tol := numeric.EqualTolerance[T]()

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if !numeric.NearlyEqual(da.data[idx], db.data[idx], tol) {
					return false
				}
			}

			return true
		}
	}

	var (
		av, bv     T
		errA, errB error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || !numeric.NearlyEqual(av, bv, tol) {
				return false
			}
		}
	}

	return true
}

// asDense validates m is non-nil and returns it as *Dense (materialized
// through the interface if needed), wrapping failures with opTag.
func asDense[T numeric.Float](opTag string, m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return d, nil
}

// asSquareDense is asDense plus the square check.
func asSquareDense[T numeric.Float](opTag string, m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return d, nil
}

// ---------- methods on *Dense (pure and mutating duals) ----------

// Add returns m + b as a new matrix; m is unchanged.
func (m *Dense[T]) Add(b Matrix[T]) (*Dense[T], error) { return Add[T](m, b) }

// Sub returns m - b as a new matrix; m is unchanged.
func (m *Dense[T]) Sub(b Matrix[T]) (*Dense[T], error) { return Sub[T](m, b) }

// Mul returns m × b as a new matrix.
func (m *Dense[T]) Mul(b Matrix[T]) (*Dense[T], error) { return Mul[T](m, b) }

// Scale returns alpha·m as a new matrix.
func (m *Dense[T]) Scale(alpha T) (*Dense[T], error) { return Scale[T](m, alpha) }

// T returns mᵀ as a new matrix.
func (m *Dense[T]) T() (*Dense[T], error) { return Transpose[T](m) }

// AddInPlace performs m += b and returns m for chaining.
// On error m is left untouched.
func (m *Dense[T]) AddInPlace(b Matrix[T]) (*Dense[T], error) {
	return m.accumulate(b, 1, opAddInPlace)
}

// SubInPlace performs m -= b and returns m for chaining.
// On error m is left untouched.
func (m *Dense[T]) SubInPlace(b Matrix[T]) (*Dense[T], error) {
	return m.accumulate(b, -1, opSubInPlace)
}

// ScaleInPlace performs m *= alpha and returns m.
func (m *Dense[T]) ScaleInPlace(alpha T) *Dense[T] {
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return m
}

// accumulate applies m += sign·b. b is read fully before m is written so a
// failing interface read cannot leave m half-updated.
func (m *Dense[T]) accumulate(b Matrix[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape[T](m, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	src, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * src.data[idx]
	}

	return m, nil
}
