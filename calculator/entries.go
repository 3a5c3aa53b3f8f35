// SPDX-License-Identifier: MIT

package calculator

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// showMatrix prints a titled matrix with the session precision.
func (s *Session) showMatrix(title string, m *matrix.Dense[float64]) {
	s.printf("\n%s:\n", title)
	s.printf("%s", m.Text(s.precision))
}

func (s *Session) showVector(title string, v *vector.Vector[float64]) {
	s.printf("%s: %s\n", title, v.Text(s.precision))
}

func (s *Session) fixed(x float64) string {
	return strconv.FormatFloat(x, 'f', s.precision, 64)
}

func (s *Session) multiply(context.Context) error {
	s.printf("Enter dimensions for Matrix A (rows cols): ")
	r1, err := s.readDim(1)
	if err != nil {
		return err
	}
	c1, err := s.readDim(1)
	if err != nil {
		return err
	}
	s.printf("Enter dimensions for Matrix B (rows cols): ")
	r2, err := s.readDim(1)
	if err != nil {
		return err
	}
	c2, err := s.readDim(1)
	if err != nil {
		return err
	}
	if c1 != r2 {
		return fmt.Errorf("matrix A columns (%d) must equal matrix B rows (%d): %w", c1, r2, matrix.ErrDimensionMismatch)
	}

	s.println("\nEnter Matrix A:")
	a, err := s.readMatrix(r1, c1)
	if err != nil {
		return err
	}
	s.println("\nEnter Matrix B:")
	b, err := s.readMatrix(r2, c2)
	if err != nil {
		return err
	}
	s.showMatrix("Matrix A", a)
	s.showMatrix("Matrix B", b)

	start := s.now()
	c, err := a.Mul(b)
	if err != nil {
		return err
	}
	s.showMatrix("Result (A × B)", c)
	s.elapsed(start, time.Microsecond)

	return nil
}

func (s *Session) determinant(context.Context) error {
	m, err := s.readSquare()
	if err != nil {
		return err
	}
	s.showMatrix("Matrix", m)

	start := s.now()
	det, err := matrix.Determinant[float64](m)
	if err != nil {
		return err
	}
	s.printf("\nDeterminant: %s\n", s.fixed(det))
	s.elapsed(start, time.Microsecond)

	return nil
}

func (s *Session) eigenvalues(context.Context) error {
	m, err := s.readSquare()
	if err != nil {
		return err
	}
	s.showMatrix("Matrix", m)

	start := s.now()
	est, err := matrix.EstimateEigenvalues[float64](m)
	if err != nil {
		return err
	}
	s.println("\nEigenvalues:")
	for i, v := range est.Values {
		s.printf("λ%d = %s\n", i+1, v.Text(s.precision))
	}
	if !est.Converged {
		s.printf("Warning: no convergence after %d iterations; values are estimates\n", est.Iterations)
	}
	s.elapsed(start, time.Microsecond)

	return nil
}

func (s *Session) inverse(context.Context) error {
	m, err := s.readSquare()
	if err != nil {
		return err
	}
	s.showMatrix("Matrix", m)

	start := s.now()
	inv, err := matrix.Inverse[float64](m)
	if err != nil {
		return err
	}
	s.showMatrix("Inverse Matrix", inv)

	check, err := m.Mul(inv)
	if err != nil {
		return err
	}
	s.showMatrix("Verification (A × A⁻¹)", check)
	s.elapsed(start, time.Microsecond)

	return nil
}

func (s *Session) dot(context.Context) error {
	s.printf("Enter vector dimension: ")
	n, err := s.readDim(1)
	if err != nil {
		return err
	}
	s.println("\nEnter Vector 1:")
	a, err := s.readVector(n)
	if err != nil {
		return err
	}
	s.println("\nEnter Vector 2:")
	b, err := s.readVector(n)
	if err != nil {
		return err
	}
	s.println()
	s.showVector("Vector 1", a)
	s.showVector("Vector 2", b)

	start := s.now()
	d, err := a.Dot(b)
	if err != nil {
		return err
	}
	s.printf("\nDot Product: %s\n", s.fixed(d))
	s.elapsed(start, time.Nanosecond)

	s.println("\nAdditional Information:")
	s.printf("Vector 1 magnitude: %s\n", s.fixed(a.Magnitude()))
	s.printf("Vector 2 magnitude: %s\n", s.fixed(b.Magnitude()))
	ang, err := a.Angle(b)
	if err != nil {
		return err
	}
	s.printf("Angle between vectors: %s radians\n", s.fixed(ang))

	return nil
}

func (s *Session) cross(context.Context) error {
	s.println("Note: Cross product is only defined for 3D vectors")
	s.println("\nEnter Vector 1 (3D):")
	a, err := s.readVector(3)
	if err != nil {
		return err
	}
	s.println("\nEnter Vector 2 (3D):")
	b, err := s.readVector(3)
	if err != nil {
		return err
	}
	s.println()
	s.showVector("Vector 1", a)
	s.showVector("Vector 2", b)

	start := s.now()
	c, err := a.Cross(b)
	if err != nil {
		return err
	}
	s.println()
	s.showVector("Cross Product", c)
	s.elapsed(start, time.Nanosecond)

	s.println("\nAdditional Information:")
	s.printf("Area of parallelogram: %s\n", s.fixed(c.Magnitude()))

	return nil
}

func (s *Session) lu(context.Context) error {
	m, err := s.readSquare()
	if err != nil {
		return err
	}
	s.showMatrix("Original Matrix", m)

	start := s.now()
	f, err := matrix.LU[float64](m)
	if err != nil {
		return err
	}
	s.showMatrix("L Matrix (Lower Triangular)", f.L)
	s.showMatrix("U Matrix (Upper Triangular)", f.U)

	check, err := f.L.Mul(f.U)
	if err != nil {
		return err
	}
	s.showMatrix("Verification (L × U)", check)
	s.elapsed(start, time.Microsecond)

	return nil
}

func (s *Session) qr(context.Context) error {
	s.printf("Enter matrix dimensions (rows cols): ")
	rows, err := s.readDim(1)
	if err != nil {
		return err
	}
	cols, err := s.readDim(1)
	if err != nil {
		return err
	}
	s.println("\nEnter matrix elements:")
	m, err := s.readMatrix(rows, cols)
	if err != nil {
		return err
	}
	s.showMatrix("Original Matrix", m)

	start := s.now()
	f, err := matrix.QR[float64](m)
	if err != nil {
		return err
	}
	s.showMatrix("Q Matrix (Orthogonal)", f.Q)
	s.showMatrix("R Matrix (Upper Triangular)", f.R)

	check, err := f.Q.Mul(f.R)
	if err != nil {
		return err
	}
	s.showMatrix("Verification (Q × R)", check)
	s.elapsed(start, time.Microsecond)

	return nil
}

func (s *Session) benchmark(ctx context.Context) error {
	if s.bench == nil {
		s.println("Benchmark suite is not available in this session.")
		return nil
	}

	return s.bench(ctx, s.out)
}
