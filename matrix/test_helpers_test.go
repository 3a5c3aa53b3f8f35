// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (interface) paths in code under test.
type hide struct{ matrix.Matrix[float64] }

// MustDense builds a *Dense from a literal table or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustFlat builds an r×c *Dense from row-major values or fails the test.
func MustFlat(t *testing.T, r, c int, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromFlat(r, c, vals)
	require.NoError(t, err)

	return m
}

// seeded returns a deterministic source for WithSource.
func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }

// RandomDense returns a reproducible r×c matrix with entries in [-1, 1).
func RandomDense(t *testing.T, r, c int, seed uint64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.Random(r, c, -1.0, 1.0, matrix.WithSource(seeded(seed)))
	require.NoError(t, err)

	return m
}

// DiagDominant returns a reproducible n×n matrix with |a_ii| > Σ|a_ij|, which
// is invertible and factors without a tiny pivot.
func DiagDominant(t *testing.T, n int, seed uint64) *matrix.Dense[float64] {
	t.Helper()
	m := RandomDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.NoError(t, m.Set(i, i, v+float64(n)+1))
	}

	return m
}

// Symmetric returns a reproducible n×n symmetric matrix (A + Aᵀ)/2.
func Symmetric(t *testing.T, n int, seed uint64) *matrix.Dense[float64] {
	t.Helper()
	a := RandomDense(t, n, n, seed)
	at, err := a.T()
	require.NoError(t, err)
	s, err := a.Add(at)
	require.NoError(t, err)

	return s.ScaleInPlace(0.5)
}

// RequireAllClose asserts equal shapes and |a-b| <= tol elementwise.
func RequireAllClose(t *testing.T, want, got matrix.Matrix[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, w, g, tol, "(%d,%d)", i, j)
		}
	}
}

// toGonum copies a Dense into a gonum matrix for oracle comparisons.
func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	r, c := m.Shape()
	flat := make([]float64, 0, r*c)
	for _, row := range m.ToRows() {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}
