// SPDX-License-Identifier: MIT

package numeric

import (
	"strconv"
	"strings"
)

// Complex is a real/imaginary pair over T. Go's builtin complex types are not
// generic, so eigenvalue estimates use this pair to keep the element
// precision of the source matrix.
type Complex[T Float] struct {
	Real T
	Imag T
}

// RealValue returns a Complex with zero imaginary part.
func RealValue[T Float](re T) Complex[T] { return Complex[T]{Real: re} }

// IsReal reports whether the imaginary part is exactly zero.
func (c Complex[T]) IsReal() bool { return c.Imag == 0 }

// Conj returns the complex conjugate.
func (c Complex[T]) Conj() Complex[T] { return Complex[T]{Real: c.Real, Imag: -c.Imag} }

// Complex128 widens the pair to the builtin complex128.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.Real), float64(c.Imag))
}

// Text renders the value with a fixed number of decimals: "a" for real
// values, "a + bi" / "a - bi" otherwise.
func (c Complex[T]) Text(precision int) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(float64(c.Real), 'f', precision, 64))
	if c.IsReal() {
		return sb.String()
	}
	im := float64(c.Imag)
	if im < 0 {
		sb.WriteString(" - ")
		im = -im
	} else {
		sb.WriteString(" + ")
	}
	sb.WriteString(strconv.FormatFloat(im, 'f', precision, 64))
	sb.WriteByte('i')

	return sb.String()
}

// String implements fmt.Stringer with 6 decimals.
func (c Complex[T]) String() string { return c.Text(6) }
