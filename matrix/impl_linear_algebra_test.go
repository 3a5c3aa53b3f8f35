// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for element-wise kernels, transpose,
// trace and equality.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/numeric"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, sum.ToRows())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-9, -18}, {-27, -36}}, diff.ToRows())

	// operands untouched
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())

	_, err = matrix.Add[float64](a, MustFlat(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub[float64](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense[float64]
	_, err = matrix.Add[float64](a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestHelpers_InterfaceHiding_Fallback ensures the interface path matches the
// *Dense fast path bit for bit.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 4, 5, 11)
	b := RandomDense(t, 4, 5, 12)
	wa, wb := hide{a}, hide{b}

	fast, err := matrix.Add[float64](a, b)
	require.NoError(t, err)
	slow, err := matrix.Add[float64](wa, wb)
	require.NoError(t, err)
	require.Equal(t, fast.ToRows(), slow.ToRows())

	fast, err = matrix.Sub[float64](a, b)
	require.NoError(t, err)
	slow, err = matrix.Sub[float64](a, wb)
	require.NoError(t, err)
	require.Equal(t, fast.ToRows(), slow.ToRows())

	fast, err = matrix.Transpose[float64](a)
	require.NoError(t, err)
	slow, err = matrix.Transpose[float64](wa)
	require.NoError(t, err)
	require.Equal(t, fast.ToRows(), slow.ToRows())

	fast, err = matrix.Scale[float64](a, -2.5)
	require.NoError(t, err)
	slow, err = matrix.Scale[float64](wa, -2.5)
	require.NoError(t, err)
	require.Equal(t, fast.ToRows(), slow.ToRows())

	assert.True(t, matrix.Equal[float64](a, wa))
	assert.False(t, matrix.Equal[float64](wa, wb))
}

func TestScale(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, -2}, {0, 4}})
	s, err := m.Scale(3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, -6}, {0, 12}}, s.ToRows())

	z, err := matrix.Scale[float64](m, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, z.ToRows())

	_, err = matrix.Scale[float64](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := m.T()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	back, err := tr.T()
	require.NoError(t, err)
	assert.Equal(t, m.ToRows(), back.ToRows())

	_, err = matrix.Transpose[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTrace(t *testing.T) {
	t.Parallel()

	tr, err := matrix.Trace[float64](MustDense(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)

	empty, err := matrix.NewDense[float64](0, 0)
	require.NoError(t, err)
	tr, err = matrix.Trace[float64](empty)
	require.NoError(t, err)
	assert.Zero(t, tr)

	_, err = matrix.Trace[float64](MustFlat(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqual_Tolerance(t *testing.T) {
	t.Parallel()

	eps := numeric.Epsilon[float64]()
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	near := MustDense(t, [][]float64{{1 + 5*eps, 2}, {3, 4}})
	far := MustDense(t, [][]float64{{1 + 100*eps, 2}, {3, 4}})

	assert.True(t, matrix.Equal[float64](a, near))
	assert.False(t, matrix.Equal[float64](a, far))
	assert.False(t, matrix.Equal[float64](a, MustFlat(t, 1, 4, 1, 2, 3, 4)), "shape differs")
	assert.False(t, matrix.Equal[float64](a, nil))

	// float32 tolerance is 10·2^-23
	x := MustF32(t, 1, 1, 1)
	y := MustF32(t, 1, 1, 1+4*numeric.Epsilon32)
	assert.True(t, matrix.Equal[float32](x, y))
}

func TestInPlace(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	other := MustDense(t, [][]float64{{1, 1}, {1, 1}})

	got, err := m.AddInPlace(other)
	require.NoError(t, err)
	require.Same(t, m, got)
	assert.Equal(t, [][]float64{{2, 3}, {4, 5}}, m.ToRows())

	_, err = m.SubInPlace(hide{other})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	assert.Equal(t, [][]float64{{-1, -2}, {-3, -4}}, m.ScaleInPlace(-1).ToRows())

	_, err = m.AddInPlace(MustFlat(t, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, [][]float64{{-1, -2}, {-3, -4}}, m.ToRows(), "untouched on error")
}

// MustF32 builds an r×c float32 matrix or fails the test.
func MustF32(t *testing.T, r, c int, vals ...float32) *matrix.Dense[float32] {
	t.Helper()
	m, err := matrix.FromFlat(r, c, vals)
	require.NoError(t, err)

	return m
}
