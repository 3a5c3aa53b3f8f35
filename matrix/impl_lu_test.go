// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestLU_Reconstruction(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 6, 12} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagDominant(t, n, uint64(n))
			lu, err := matrix.LU[float64](a)
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					l, _ := lu.L.At(i, j)
					u, _ := lu.U.At(i, j)
					switch {
					case i == j:
						require.Equal(t, 1.0, l, "unit diagonal")
					case i < j:
						require.Zero(t, l, "L upper part")
					default:
						require.Zero(t, u, "U lower part")
					}
				}
			}

			prod, err := lu.L.Mul(lu.U)
			require.NoError(t, err)
			RequireAllClose(t, a, prod, 1e-12)
		})
	}
}

func TestLU_KnownValues(t *testing.T) {
	t.Parallel()

	lu, err := matrix.LU[float64](MustDense(t, [][]float64{{4, 3}, {6, 3}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {1.5, 1}}, lu.L.ToRows())
	assert.Equal(t, [][]float64{{4, 3}, {0, -1.5}}, lu.U.ToRows())
}

// TestLU_NoPivoting documents that a zero leading entry is reported as
// singular even though the matrix is invertible.
func TestLU_NoPivoting(t *testing.T) {
	t.Parallel()

	_, err := matrix.LU[float64](MustDense(t, [][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	// the last diagonal entry is never a pivot
	lu, err := matrix.LU[float64](MustDense(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	u11, _ := lu.U.At(1, 1)
	assert.Zero(t, u11)

	_, err = matrix.LU[float64](MustFlat(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDeterminant_ClosedForms(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}}, -2},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4 diagonal", [][]float64{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 5}}, 120},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Determinant[float64](MustDense(t, tc.rows))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, d, 1e-12)
		})
	}

	empty, _ := matrix.NewDense[float64](0, 0)
	d, err := matrix.Determinant[float64](empty)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d32, err := matrix.Determinant[float32](MustF32(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, float32(-2), d32)
}

func TestDeterminant_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant[float64](MustFlat(t, 2, 3, 1, 2, 3, 4, 5, 6))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// order >= 4 goes through LU and inherits its pivot policy
	perm := MustDense(t, [][]float64{{0, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}})
	_, err = matrix.Determinant[float64](perm)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestDeterminant_Oracle compares against gonum on random well-conditioned input.
func TestDeterminant_Oracle(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4, 5, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagDominant(t, n, uint64(40+n))
			got, err := matrix.Determinant[float64](a)
			require.NoError(t, err)
			want := mat.Det(toGonum(a))
			assert.InEpsilon(t, want, got, 1e-10)
		})
	}
}
