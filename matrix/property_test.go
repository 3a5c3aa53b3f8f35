// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/linalg/matrix"
)

// TestAlgebraicIdentities_PropertyBased checks structural identities on
// randomly shaped, randomly filled matrices.
func TestAlgebraicIdentities_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	build := func(r, c int, seed uint64) *matrix.Dense[float64] {
		m, err := matrix.Random(r, c, -10.0, 10.0, matrix.WithSource(seeded(seed)))
		if err != nil {
			t.Logf("Random(%d,%d): %v", r, c, err)
			return nil
		}
		return m
	}

	properties.Property("transpose is an involution", prop.ForAll(
		func(r, c int, seed uint64) bool {
			a := build(r, c, seed)
			at, err := a.T()
			if err != nil {
				return false
			}
			att, err := at.T()
			if err != nil {
				return false
			}
			return matrix.Equal[float64](a, att)
		},
		gen.IntRange(0, 12), gen.IntRange(0, 12), gen.UInt64(),
	))

	properties.Property("identity is neutral on both sides", prop.ForAll(
		func(r, c int, seed uint64) bool {
			a := build(r, c, seed)
			ir, _ := matrix.Identity[float64](r)
			ic, _ := matrix.Identity[float64](c)
			left, err := ir.Mul(a)
			if err != nil {
				return false
			}
			right, err := a.Mul(ic)
			if err != nil {
				return false
			}
			return matrix.Equal[float64](a, left) && matrix.Equal[float64](a, right)
		},
		gen.IntRange(1, 10), gen.IntRange(1, 10), gen.UInt64(),
	))

	properties.Property("a + b - b == a", prop.ForAll(
		func(r, c int, s1, s2 uint64) bool {
			a, b := build(r, c, s1), build(r, c, s2)
			sum, err := a.Add(b)
			if err != nil {
				return false
			}
			back, err := sum.SubInPlace(b)
			if err != nil {
				return false
			}
			// |a| <= 10 so round-off stays within a few ulps of 20
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					x, _ := a.At(i, j)
					y, _ := back.At(i, j)
					if d := x - y; d > 1e-14 || d < -1e-14 {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 8), gen.IntRange(1, 8), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("blocked and direct kernels agree bit for bit", prop.ForAll(
		func(n, k, p int, seed uint64) bool {
			a, b := build(n, k, seed), build(k, p, seed+1)
			d := matrix.MulDirect_TestOnly(a, b)
			bl := matrix.MulBlocked_TestOnly(a, b)
			dr, br := d.ToRows(), bl.ToRows()
			for i := range dr {
				for j := range dr[i] {
					if dr[i][j] != br[i][j] {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 2*matrix.BlockSize+5), gen.IntRange(1, 2*matrix.BlockSize+5), gen.IntRange(1, 20), gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestDecompositions_PropertyBased checks LU and QR reconstruction on
// diagonally dominant input.
func TestDecompositions_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("L·U reconstructs A", prop.ForAll(
		func(n int, seed uint64) bool {
			a := DiagDominant(t, n, seed)
			lu, err := matrix.LU[float64](a)
			if err != nil {
				return false
			}
			prod, err := lu.L.Mul(lu.U)
			return err == nil && withinAbs(a, prod, 1e-11)
		},
		gen.IntRange(1, 16), gen.UInt64(),
	))

	properties.Property("Q·R reconstructs A", prop.ForAll(
		func(n int, seed uint64) bool {
			a := DiagDominant(t, n, seed)
			qr, err := matrix.QR[float64](a)
			if err != nil {
				return false
			}
			prod, err := qr.Q.Mul(qr.R)
			return err == nil && withinAbs(a, prod, 1e-11)
		},
		gen.IntRange(1, 16), gen.UInt64(),
	))

	properties.TestingRun(t)
}

func withinAbs(a, b *matrix.Dense[float64], tol float64) bool {
	ar, br := a.ToRows(), b.ToRows()
	if len(ar) != len(br) {
		return false
	}
	for i := range ar {
		for j := range ar[i] {
			if d := ar[i][j] - br[i][j]; d > tol || d < -tol {
				return false
			}
		}
	}

	return true
}
