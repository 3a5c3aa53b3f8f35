// SPDX-License-Identifier: MIT
// Package matrix: human-readable rendering.
//
// Layout (one line per row):
//
//	[  1.00   2.00]
//	[  3.00   4.00]
//
// Each cell is fixed-point with the requested precision, right-aligned in a
// field of precision+4 runes; cells are separated by one space. The output is
// presentation-only and is not meant to be parsed back.

package matrix

import (
	"io"
	"strconv"
	"strings"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
	_fmtPad      = 4 // field width = precision + _fmtPad
)

// Text renders m with the given number of decimals (negative ⇒ DefaultPrecision).
// Complexity: O(r*c).
func (m *Dense[T]) Text(precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	width := precision + _fmtPad
	var b strings.Builder
	var cell string
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			cell = strconv.FormatFloat(float64(m.data[i*m.c+j]), 'f', precision, 64)
			if pad := width - len(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// String renders m with DefaultPrecision decimals.
func (m *Dense[T]) String() string { return m.Text(DefaultPrecision) }

// Print writes m to w. Precision defaults to DefaultPrecision and may be
// overridden with WithPrecision.
func (m *Dense[T]) Print(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	_, err := io.WriteString(w, m.Text(o.precision))

	return err
}
