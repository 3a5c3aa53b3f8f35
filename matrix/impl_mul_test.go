// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestMul_KnownValue(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{5, 6}, {7, 8}})
	c, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{19, 22}, {43, 50}}, c.ToRows())

	// interface operands take the same kernel after materialization
	c2, err := matrix.Mul[float64](hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, c.ToRows(), c2.ToRows())
}

func TestMul_Shapes(t *testing.T) {
	t.Parallel()

	a := MustFlat(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustFlat(t, 3, 1, 1, 0, -1)
	c, err := matrix.Mul[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-2}, {-2}}, c.ToRows())

	_, err = matrix.Mul[float64](a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul[float64](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// inner dimension 0 gives a zero matrix of the outer shape
	e1, _ := matrix.NewDense[float64](2, 0)
	e2, _ := matrix.NewDense[float64](0, 3)
	z, err := matrix.Mul[float64](e1, e2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.ToRows())
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 5, 3, 3)
	ir, _ := matrix.Identity[float64](5)
	ic, _ := matrix.Identity[float64](3)

	left, err := matrix.Mul[float64](ir, a)
	require.NoError(t, err)
	right, err := matrix.Mul[float64](a, ic)
	require.NoError(t, err)
	assert.True(t, matrix.Equal[float64](a, left))
	assert.True(t, matrix.Equal[float64](a, right))
}

// TestMul_BlockedEqualsDirect compares the two kernels bit for bit on shapes
// around the tile edge, including ones that Mul routes to each kernel.
func TestMul_BlockedEqualsDirect(t *testing.T) {
	t.Parallel()

	for i, sh := range [][3]int{
		{3, 4, 5},
		{matrix.BlockSize, matrix.BlockSize, matrix.BlockSize},
		{matrix.BlockSize + 1, 7, 3},
		{5, 2*matrix.BlockSize + 3, 4},
		{70, 65, 66},
	} {
		n, k, p := sh[0], sh[1], sh[2]
		t.Run(fmt.Sprintf("%dx%dx%d", n, k, p), func(t *testing.T) {
			a := RandomDense(t, n, k, uint64(100+i))
			b := RandomDense(t, k, p, uint64(200+i))

			direct := matrix.MulDirect_TestOnly(a, b)
			blocked := matrix.MulBlocked_TestOnly(a, b)
			require.Equal(t, direct.ToRows(), blocked.ToRows())

			viaMul, err := matrix.Mul[float64](a, b)
			require.NoError(t, err)
			require.Equal(t, direct.ToRows(), viaMul.ToRows())
		})
	}
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MulVec[float64](m, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MulVec[float64](m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
