// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep the rectangular invariant by construction: len(data) == rows*cols at all times,
//     and Resize swaps in a fully rebuilt buffer.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: kernels operate on the flat data slice directly.
//   - Use SubMatrix to materialize an independent window (copy).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Resize: O(r'*c').
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxSubMatrix = "SubMatrix"
)

// denseErrorf wraps an error with a uniform Dense context and call-site indices,
// e.g. "Dense.At(3,0): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T numeric.Float] struct {
	r, c int
	data []T
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Implementation:
//   - Stage 1: reject negative extents with ErrInvalidDimensions.
//   - Stage 2: allocate the flat backing slice once.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T numeric.Float](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
func NewFilled[T numeric.Float](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// FromRows builds a matrix from a rectangular literal table; the table is copied.
// Implementation:
//   - Stage 1: derive cols from the first row; every other row must match
//     (ragged input ⇒ ErrDimensionMismatch).
//   - Stage 2: copy rows into the flat buffer in i order.
//
// Notes:
//   - An empty table yields a 0×0 matrix.
func FromRows[T numeric.Float](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromFlat builds an r×c matrix from row-major values; vals is copied.
// len(vals) must equal rows*cols, else ErrInvalidDimensions.
func FromFlat[T numeric.Float](rows, cols int, vals []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("FromFlat(%d,%d): got %d values: %w", rows, cols, len(vals), ErrInvalidDimensions)
	}
	copy(m.data, vals)

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether rows == cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns a wrapped ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy as the Matrix interface.
func (m *Dense[T]) Clone() Matrix[T] { return m.Copy() }

// Copy returns a deep copy with the concrete type preserved.
// Complexity: O(r*c).
func (m *Dense[T]) Copy() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for idx := range m.data {
		m.data[idx] = v
	}
}

// FillRandom overwrites every element with a uniform draw from [lo, hi).
// The draw order is row-major, so a seeded WithSource reproduces the matrix.
func (m *Dense[T]) FillRandom(lo, hi T, opts ...Option) {
	o := gatherOptions(opts...)
	span := float64(hi) - float64(lo)
	for idx := range m.data {
		m.data[idx] = T(float64(lo) + span*o.uniform())
	}
}

// Resize rebuilds storage as rows×cols. The overlapping top-left block is
// preserved; new cells take fill.
// Implementation:
//   - Stage 1: validate the new shape.
//   - Stage 2: allocate a fresh buffer, copy the overlap row by row.
//   - Stage 3: swap shape and buffer together so the invariant never breaks.
func (m *Dense[T]) Resize(rows, cols int, fill T) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Resize(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	data := make([]T, rows*cols)
	for idx := range data {
		data[idx] = fill
	}
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(data[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, data

	return nil
}

// SubMatrix copies the half-open window [r0,r1)×[c0,c1).
// Returns ErrOutOfRange when the window is inverted or exceeds the shape.
func (m *Dense[T]) SubMatrix(r0, r1, c0, c1 int) (*Dense[T], error) {
	if r0 < 0 || c0 < 0 || r1 > m.r || c1 > m.c || r0 > r1 || c0 > c1 {
		return nil, fmt.Errorf("Dense.%s[%d:%d,%d:%d]: %w", ctxSubMatrix, r0, r1, c0, c1, ErrOutOfRange)
	}
	rows, cols := r1-r0, c1-c0
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c1])
	}

	return out, nil
}

// ToRows exports the matrix as a freshly allocated [][]T table.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// toDense returns m itself when it is already *Dense[T], otherwise a Dense
// copy built through the interface. Decomposition kernels call it once and
// then work on flat slices only.
func toDense[T numeric.Float](m Matrix[T]) (*Dense[T], error) {
	if d, ok := m.(*Dense[T]); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
