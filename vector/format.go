// SPDX-License-Identifier: MIT

package vector

import (
	"io"
	"strconv"
	"strings"
)

// Text renders v as "[a, b, c]" with the given number of decimals
// (negative ⇒ DefaultPrecision).
func (v *Vector[T]) Text(precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'f', precision, 64))
	}
	b.WriteByte(']')

	return b.String()
}

// String renders v with DefaultPrecision decimals.
func (v *Vector[T]) String() string { return v.Text(DefaultPrecision) }

// Print writes v followed by a newline. Precision defaults to
// DefaultPrecision and may be overridden with WithPrecision.
func (v *Vector[T]) Print(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	_, err := io.WriteString(w, v.Text(o.precision)+"\n")

	return err
}
