// SPDX-License-Identifier: MIT

// Package vector - storage, construction and bounds-checked access.
//
// Invariants:
//   - The dimension is len(data); there is no separate counter to drift.
//   - Resize swaps in a fully rebuilt slice.
package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Vector is a dense, mutable sequence of T with value semantics via Clone.
// A single Vector is not safe for concurrent mutation.
type Vector[T numeric.Float] struct {
	data []T
}

// New returns a zero vector of length n. Negative n ⇒ ErrInvalidDimensions.
func New[T numeric.Float](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(opNew, fmt.Errorf("length %d: %w", n, ErrInvalidDimensions))
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// NewFilled returns a vector of length n with every element set to v.
func NewFilled[T numeric.Float](n int, v T) (*Vector[T], error) {
	out, err := New[T](n)
	if err != nil {
		return nil, err
	}
	out.Fill(v)

	return out, nil
}

// FromSlice copies xs into a new vector.
func FromSlice[T numeric.Float](xs []T) *Vector[T] {
	data := make([]T, len(xs))
	copy(data, xs)

	return &Vector[T]{data: data}
}

// Of builds a vector from its arguments.
func Of[T numeric.Float](xs ...T) *Vector[T] { return FromSlice(xs) }

// New3 builds the 3-D vector (x, y, z).
func New3[T numeric.Float](x, y, z T) *Vector[T] { return &Vector[T]{data: []T{x, y, z}} }

// Zeros returns a zero vector of length n.
func Zeros[T numeric.Float](n int) (*Vector[T], error) { return New[T](n) }

// Ones returns a vector of length n filled with 1.
func Ones[T numeric.Float](n int) (*Vector[T], error) { return NewFilled[T](n, 1) }

// Random returns a vector of length n with uniform entries in [lo, hi).
// Pass WithSource for a reproducible vector.
func Random[T numeric.Float](n int, lo, hi T, opts ...Option) (*Vector[T], error) {
	out, err := New[T](n)
	if err != nil {
		return nil, vectorErrorf(opRandom, err)
	}
	out.FillRandom(lo, hi, opts...)

	return out, nil
}

// UnitX returns (1, 0, 0).
func UnitX[T numeric.Float]() *Vector[T] { return New3[T](1, 0, 0) }

// UnitY returns (0, 1, 0).
func UnitY[T numeric.Float]() *Vector[T] { return New3[T](0, 1, 0) }

// UnitZ returns (0, 0, 1).
func UnitZ[T numeric.Float]() *Vector[T] { return New3[T](0, 0, 1) }

// Len returns the dimension.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set assigns element i or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(opSet, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange))
	}
	v.data[i] = x

	return nil
}

// X returns element 0, or 0 when the vector is shorter.
func (v *Vector[T]) X() T { return v.component(0) }

// Y returns element 1, or 0 when the vector is shorter.
func (v *Vector[T]) Y() T { return v.component(1) }

// Z returns element 2, or 0 when the vector is shorter.
func (v *Vector[T]) Z() T { return v.component(2) }

// SetX assigns element 0; no-op when the vector is shorter.
func (v *Vector[T]) SetX(x T) { v.setComponent(0, x) }

// SetY assigns element 1; no-op when the vector is shorter.
func (v *Vector[T]) SetY(y T) { v.setComponent(1, y) }

// SetZ assigns element 2; no-op when the vector is shorter.
func (v *Vector[T]) SetZ(z T) { v.setComponent(2, z) }

func (v *Vector[T]) component(i int) T {
	if i < len(v.data) {
		return v.data[i]
	}

	return 0
}

func (v *Vector[T]) setComponent(i int, x T) {
	if i < len(v.data) {
		v.data[i] = x
	}
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] { return FromSlice(v.data) }

// SubVector copies length elements starting at start.
// start < 0, length < 0 or start+length > Len ⇒ ErrOutOfRange.
func (v *Vector[T]) SubVector(start, length int) (*Vector[T], error) {
	if start < 0 || length < 0 || start+length > len(v.data) {
		return nil, vectorErrorf(opSubVector, fmt.Errorf("[%d:+%d] of %d: %w", start, length, len(v.data), ErrOutOfRange))
	}

	return FromSlice(v.data[start : start+length]), nil
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// FillRandom overwrites every element with a uniform draw from [lo, hi).
func (v *Vector[T]) FillRandom(lo, hi T, opts ...Option) {
	o := gatherOptions(opts...)
	span := float64(hi) - float64(lo)
	for i := range v.data {
		v.data[i] = T(float64(lo) + span*o.uniform())
	}
}

// Resize changes the dimension to n, keeping the common prefix and setting
// new elements to fill.
func (v *Vector[T]) Resize(n int, fill T) error {
	if n < 0 {
		return vectorErrorf(opResize, fmt.Errorf("length %d: %w", n, ErrInvalidDimensions))
	}
	data := make([]T, n)
	k := copy(data, v.data)
	for i := k; i < n; i++ {
		data[i] = fill
	}
	v.data = data

	return nil
}

// sameLen checks other is non-nil and has v's dimension.
func (v *Vector[T]) sameLen(tag string, other *Vector[T]) error {
	if other == nil {
		return vectorErrorf(tag, ErrNilVector)
	}
	if len(v.data) != len(other.data) {
		return vectorErrorf(tag, fmt.Errorf("%d vs %d: %w", len(v.data), len(other.data), ErrDimensionMismatch))
	}

	return nil
}
