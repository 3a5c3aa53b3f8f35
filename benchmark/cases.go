// SPDX-License-Identifier: MIT

package benchmark

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Operand range for generated data.
const (
	dataLo = -10.0
	dataHi = 10.0
)

// Throughput units.
const (
	UnitGFLOPS = "GFLOPS"
	UnitOpsSec = "ops/sec"
)

// benchCase is one timed operation. prepare builds the operands outside the
// timed region and returns the body to time.
type benchCase struct {
	group   string
	name    string
	size    int
	unit    string
	work    float64 // operations performed by body; 0 ⇒ no throughput
	scale   float64 // divisor applied to ops/sec (1e9 for GFLOPS)
	prepare func(rng *rand.Rand) (func() error, error)
}

func randomSquare(rng *rand.Rand, n int) (*matrix.Dense[float64], error) {
	return matrix.Random(n, n, dataLo, dataHi, matrix.WithSource(rng))
}

func randomVector(rng *rand.Rand, n int) (*vector.Vector[float64], error) {
	return vector.Random(n, dataLo, dataHi, vector.WithSource(rng))
}

func squareName(op string, n int) string { return fmt.Sprintf("%s %dx%d", op, n, n) }

func sizedName(op string, n int) string { return fmt.Sprintf("%s (size %d)", op, n) }

// unary times fn on one random n×n matrix.
func unary(group, op string, n int, fn func(m *matrix.Dense[float64]) error) benchCase {
	return benchCase{
		group: group,
		name:  squareName(op, n),
		size:  n,
		prepare: func(rng *rand.Rand) (func() error, error) {
			m, err := randomSquare(rng, n)
			if err != nil {
				return nil, err
			}
			return func() error { return fn(m) }, nil
		},
	}
}

func (su *Suite) cases() []benchCase {
	var out []benchCase
	s := su.sizes

	for _, n := range s.Mul {
		out = append(out, benchCase{
			group: "Matrix Multiplication",
			name:  squareName("Matrix multiplication", n),
			size:  n,
			unit:  UnitGFLOPS,
			work:  2 * float64(n) * float64(n) * float64(n),
			scale: 1e9,
			prepare: func(rng *rand.Rand) (func() error, error) {
				a, err := randomSquare(rng, n)
				if err != nil {
					return nil, err
				}
				b, err := randomSquare(rng, n)
				if err != nil {
					return nil, err
				}
				return func() error { _, err := a.Mul(b); return err }, nil
			},
		})
	}
	for _, n := range s.Det {
		out = append(out, unary("Determinant", "Determinant", n, func(m *matrix.Dense[float64]) error {
			_, err := matrix.Determinant[float64](m)
			return err
		}))
	}
	for _, n := range s.Eigen {
		out = append(out, unary("Eigenvalues", "Eigenvalues", n, func(m *matrix.Dense[float64]) error {
			_, err := matrix.EstimateEigenvalues[float64](m)
			return err
		}))
	}
	for _, n := range s.Inverse {
		out = append(out, benchCase{
			group: "Matrix Inverse",
			name:  squareName("Matrix inverse", n),
			size:  n,
			prepare: func(rng *rand.Rand) (func() error, error) {
				m, err := randomSquare(rng, n)
				if err != nil {
					return nil, err
				}
				id, err := matrix.Identity[float64](n)
				if err != nil {
					return nil, err
				}
				if _, err = m.AddInPlace(id.ScaleInPlace(0.1)); err != nil {
					return nil, err
				}
				return func() error { _, err := matrix.Inverse[float64](m); return err }, nil
			},
		})
	}
	for _, n := range s.LU {
		out = append(out, unary("LU Decomposition", "LU Decomposition", n, func(m *matrix.Dense[float64]) error {
			_, err := matrix.LU[float64](m)
			return err
		}))
	}
	for _, n := range s.QR {
		out = append(out, unary("QR Decomposition", "QR Decomposition", n, func(m *matrix.Dense[float64]) error {
			_, err := matrix.QR[float64](m)
			return err
		}))
	}
	for _, n := range s.VectorOps {
		out = append(out, vectorCases(n)...)
	}
	for _, n := range s.Dot {
		out = append(out, benchCase{
			group: "Dot Product",
			name:  sizedName("Dot product", n),
			size:  n,
			unit:  UnitGFLOPS,
			work:  2 * float64(n),
			scale: 1e9,
			prepare: func(rng *rand.Rand) (func() error, error) {
				a, err := randomVector(rng, n)
				if err != nil {
					return nil, err
				}
				b, err := randomVector(rng, n)
				if err != nil {
					return nil, err
				}
				return func() error { _, err := a.Dot(b); return err }, nil
			},
		})
	}
	if s.CrossOps > 0 {
		ops := s.CrossOps
		out = append(out, benchCase{
			group: "Cross Product",
			name:  fmt.Sprintf("Cross product (%d operations)", ops),
			size:  ops,
			unit:  UnitOpsSec,
			work:  float64(ops),
			scale: 1,
			prepare: func(*rand.Rand) (func() error, error) {
				a, b := vector.New3(1.0, 2.0, 3.0), vector.New3(4.0, 5.0, 6.0)
				return func() error {
					for i := 0; i < ops; i++ {
						if _, err := a.Cross(b); err != nil {
							return err
						}
					}
					return nil
				}, nil
			},
		})
	}

	return out
}

// vectorCases times addition, magnitude and normalization at size n.
func vectorCases(n int) []benchCase {
	const group = "Vector Operations"
	pair := func(rng *rand.Rand) (*vector.Vector[float64], *vector.Vector[float64], error) {
		a, err := randomVector(rng, n)
		if err != nil {
			return nil, nil, err
		}
		b, err := randomVector(rng, n)
		return a, b, err
	}

	return []benchCase{
		{
			group: group, name: sizedName("Vector addition", n), size: n,
			prepare: func(rng *rand.Rand) (func() error, error) {
				a, b, err := pair(rng)
				if err != nil {
					return nil, err
				}
				return func() error { _, err := a.Add(b); return err }, nil
			},
		},
		{
			group: group, name: sizedName("Vector magnitude", n), size: n,
			prepare: func(rng *rand.Rand) (func() error, error) {
				a, err := randomVector(rng, n)
				if err != nil {
					return nil, err
				}
				return func() error { _ = a.Magnitude(); return nil }, nil
			},
		},
		{
			group: group, name: sizedName("Vector normalization", n), size: n,
			prepare: func(rng *rand.Rand) (func() error, error) {
				a, err := randomVector(rng, n)
				if err != nil {
					return nil, err
				}
				return func() error { _, err := a.Normalize(); return err }, nil
			},
		},
	}
}
