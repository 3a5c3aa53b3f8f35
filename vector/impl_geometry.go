// SPDX-License-Identifier: MIT
// Package vector: geometric operations.

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Dot returns Σ v[i]·other[i], folded left to right.
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	if err := v.sameLen(opDot, other); err != nil {
		return 0, err
	}

	return v.dot(other), nil
}

func (v *Vector[T]) dot(other *Vector[T]) T {
	var sum T
	for i, x := range v.data {
		sum += x * other.data[i]
	}

	return sum
}

// Cross returns v × other. Both must be 3-D, else ErrUnsupported.
func (v *Vector[T]) Cross(other *Vector[T]) (*Vector[T], error) {
	if other == nil {
		return nil, vectorErrorf(opCross, ErrNilVector)
	}
	if len(v.data) != 3 || len(other.data) != 3 {
		return nil, vectorErrorf(opCross, fmt.Errorf("dimensions %d and %d: %w", len(v.data), len(other.data), ErrUnsupported))
	}
	a, b := v.data, other.data

	return New3(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// MagnitudeSquared returns Σ v[i]².
func (v *Vector[T]) MagnitudeSquared() T { return v.dot(v) }

// Magnitude returns the Euclidean norm.
func (v *Vector[T]) Magnitude() T { return numeric.Sqrt(v.MagnitudeSquared()) }

// Normalize returns v/|v|. |v| < ε(T) ⇒ ErrZeroVector.
func (v *Vector[T]) Normalize() (*Vector[T], error) {
	return v.Clone().NormalizeInPlace()
}

// NormalizeInPlace scales v to unit length and returns it.
// |v| < ε(T) ⇒ ErrZeroVector and v is unchanged.
func (v *Vector[T]) NormalizeInPlace() (*Vector[T], error) {
	mag := v.Magnitude()
	if numeric.IsNearZero(mag) {
		return nil, vectorErrorf(opNormalize, fmt.Errorf("magnitude %g: %w", float64(mag), ErrZeroVector))
	}

	return v.divide(mag), nil
}

// Distance returns |v - other|.
func (v *Vector[T]) Distance(other *Vector[T]) (T, error) {
	d, err := v.DistanceSquared(other)
	if err != nil {
		return 0, err
	}

	return numeric.Sqrt(d), nil
}

// DistanceSquared returns |v - other|².
func (v *Vector[T]) DistanceSquared(other *Vector[T]) (T, error) {
	if err := v.sameLen(opDistance, other); err != nil {
		return 0, err
	}
	var sum, d T
	for i, x := range v.data {
		d = x - other.data[i]
		sum += d * d
	}

	return sum, nil
}

// Angle returns the angle between v and other in radians, in [0, π].
// The cosine is clamped to [-1, 1] before acos. A magnitude product below
// ε(T) ⇒ ErrZeroVector.
func (v *Vector[T]) Angle(other *Vector[T]) (T, error) {
	if err := v.sameLen(opAngle, other); err != nil {
		return 0, err
	}
	magProduct := v.Magnitude() * other.Magnitude()
	if numeric.IsNearZero(magProduct) {
		return 0, vectorErrorf(opAngle, ErrZeroVector)
	}
	cos := numeric.Clamp(v.dot(other)/magProduct, -1, 1)

	return numeric.Acos(cos), nil
}

// Project returns (v·onto / |onto|²)·onto. |onto|² < ε(T) ⇒ ErrZeroVector.
func (v *Vector[T]) Project(onto *Vector[T]) (*Vector[T], error) {
	return v.project(opProject, onto)
}

// Reject returns v - Project(onto), the component orthogonal to onto.
func (v *Vector[T]) Reject(onto *Vector[T]) (*Vector[T], error) {
	p, err := v.project(opReject, onto)
	if err != nil {
		return nil, err
	}

	return v.Clone().accumulate(p, -1, opReject)
}

func (v *Vector[T]) project(tag string, onto *Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(tag, onto); err != nil {
		return nil, err
	}
	magSq := onto.MagnitudeSquared()
	if numeric.IsNearZero(magSq) {
		return nil, vectorErrorf(tag, ErrZeroVector)
	}

	return onto.Scale(v.dot(onto) / magSq), nil
}
