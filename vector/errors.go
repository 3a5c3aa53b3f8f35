// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Operations return these sentinels wrapped with an operation tag; match them
// with errors.Is. Panics are reserved for invalid Option arguments.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an index or window outside the vector.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDivideByZero is returned when dividing by a scalar whose magnitude is
	// below machine epsilon.
	ErrDivideByZero = errors.New("vector: division by zero")

	// ErrZeroVector signals an operation that needs a direction (normalize,
	// angle, projection) applied to a vector of near-zero magnitude.
	ErrZeroVector = errors.New("vector: near-zero magnitude")

	// ErrUnsupported is returned by Cross for vectors that are not 3-D.
	ErrUnsupported = errors.New("vector: unsupported operation")

	// ErrEmpty is returned by Min/Max on a zero-length vector.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrInvalidDimensions is returned for a negative length.
	ErrInvalidDimensions = errors.New("vector: invalid dimensions")

	// ErrNilVector indicates a nil *Vector argument.
	ErrNilVector = errors.New("vector: nil vector")
)

// Operation tags.
const (
	opNew        = "New"
	opAt         = "At"
	opSet        = "Set"
	opSubVector  = "SubVector"
	opResize     = "Resize"
	opAdd        = "Add"
	opSub        = "Sub"
	opDiv        = "Div"
	opDot        = "Dot"
	opCross      = "Cross"
	opNormalize  = "Normalize"
	opDistance   = "Distance"
	opAngle      = "Angle"
	opProject    = "Project"
	opReject     = "Reject"
	opMin        = "Min"
	opMax        = "Max"
	opRandom     = "Random"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opDivInPlace = "DivInPlace"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
