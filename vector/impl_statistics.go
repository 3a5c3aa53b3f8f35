// SPDX-License-Identifier: MIT

package vector

import "slices"

// Sum returns Σ v[i]; 0 for the empty vector.
func (v *Vector[T]) Sum() T {
	var s T
	for _, x := range v.data {
		s += x
	}

	return s
}

// Mean returns Sum/Len; 0 for the empty vector.
func (v *Vector[T]) Mean() T {
	if len(v.data) == 0 {
		return 0
	}

	return v.Sum() / T(len(v.data))
}

// Min returns the smallest element. Empty ⇒ ErrEmpty.
func (v *Vector[T]) Min() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf(opMin, ErrEmpty)
	}

	return slices.Min(v.data), nil
}

// Max returns the largest element. Empty ⇒ ErrEmpty.
func (v *Vector[T]) Max() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf(opMax, ErrEmpty)
	}

	return slices.Max(v.data), nil
}
