// SPDX-License-Identifier: MIT
// Package vector: element-wise arithmetic. Pure methods return a new vector;
// *InPlace methods mutate the receiver and return it for chaining.

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Add returns v + other.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return v.Clone().accumulate(other, 1, opAdd)
}

// Sub returns v - other.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return v.Clone().accumulate(other, -1, opSub)
}

// AddInPlace performs v += other. On error v is unchanged.
func (v *Vector[T]) AddInPlace(other *Vector[T]) (*Vector[T], error) {
	return v.accumulate(other, 1, opAddInPlace)
}

// SubInPlace performs v -= other. On error v is unchanged.
func (v *Vector[T]) SubInPlace(other *Vector[T]) (*Vector[T], error) {
	return v.accumulate(other, -1, opSubInPlace)
}

func (v *Vector[T]) accumulate(other *Vector[T], sign T, tag string) (*Vector[T], error) {
	if err := v.sameLen(tag, other); err != nil {
		return nil, err
	}
	for i, x := range other.data {
		v.data[i] += sign * x
	}

	return v, nil
}

// Scale returns s·v.
func (v *Vector[T]) Scale(s T) *Vector[T] { return v.Clone().ScaleInPlace(s) }

// ScaleInPlace performs v *= s.
func (v *Vector[T]) ScaleInPlace(s T) *Vector[T] {
	for i := range v.data {
		v.data[i] *= s
	}

	return v
}

// Div returns v / s. |s| < ε(T) ⇒ ErrDivideByZero.
func (v *Vector[T]) Div(s T) (*Vector[T], error) {
	if numeric.IsNearZero(s) {
		return nil, vectorErrorf(opDiv, fmt.Errorf("divisor %g: %w", float64(s), ErrDivideByZero))
	}

	return v.Clone().divide(s), nil
}

// DivInPlace performs v /= s. |s| < ε(T) ⇒ ErrDivideByZero and v is unchanged.
func (v *Vector[T]) DivInPlace(s T) (*Vector[T], error) {
	if numeric.IsNearZero(s) {
		return nil, vectorErrorf(opDivInPlace, fmt.Errorf("divisor %g: %w", float64(s), ErrDivideByZero))
	}

	return v.divide(s), nil
}

func (v *Vector[T]) divide(s T) *Vector[T] {
	for i := range v.data {
		v.data[i] /= s
	}

	return v
}

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] { return v.Scale(-1) }

// Equal reports equal dimension and |v[i]-other[i]| <= 10·ε(T) for all i.
// A nil other compares unequal.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil || len(v.data) != len(other.data) {
		return false
	}
	tol := numeric.EqualTolerance[T]()
	for i, x := range v.data {
		if !numeric.NearlyEqual(x, other.data[i], tol) {
			return false
		}
	}

	return true
}
