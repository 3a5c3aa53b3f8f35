// SPDX-License-Identifier: MIT
// Package matrix: eigenvalue routines.
//
// Purpose:
//   - Eigenvalues / EstimateEigenvalues: closed forms for order ≤ 2 and the
//     unshifted QR iteration A ← R·Q for order ≥ 3.
//   - EigenSym: Jacobi rotations for symmetric input, returning eigenvectors.
//
// Accuracy notes:
//   - The QR iteration has no shifts and no deflation. Complex-conjugate pairs
//     of order ≥ 3 matrices never converge (they persist as 2×2 blocks) and
//     closely spaced eigenvalues converge slowly; the diagonal is returned as
//     a best-effort estimate with Converged=false when the cap is exhausted.
//   - Use EigenSym whenever the input is symmetric.

package matrix

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/linalg/numeric"
)

// Eigenvalues returns one estimate per order of a square matrix.
// It is EstimateEigenvalues without the iteration report.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
func Eigenvalues[T numeric.Float](m Matrix[T], opts ...Option) ([]numeric.Complex[T], error) {
	est, err := EstimateEigenvalues(m, opts...)
	if err != nil {
		return nil, err
	}

	return est.Values, nil
}

// EstimateEigenvalues computes eigenvalue estimates with a convergence report.
// Implementation:
//   - order 0: empty; order 1: the element.
//   - order 2: roots of λ² − tr·λ + det. disc = tr² − 4·det; disc ≥ 0 gives
//     (tr+√disc)/2 then (tr−√disc)/2, otherwise tr/2 + i√(−disc)/2 then its conjugate.
//   - order ≥ 3: repeat QR(A) → A := R·Q; after each step stop when
//     Σ_{i≠j} |A[i,j]| < tol. Diagonal entries are returned as real values.
//
// Options:
//   - WithMaxIterations (default DefaultMaxIterations),
//     WithTolerance (default 100·ε(T)).
//
// Complexity:
//   - O(iter·n³) for order ≥ 3.
func EstimateEigenvalues[T numeric.Float](m Matrix[T], opts ...Option) (EigenEstimate[T], error) {
	a, err := asSquareDense(opEigenvalues, m)
	if err != nil {
		return EigenEstimate[T]{}, err
	}
	d := a.data
	switch a.r {
	case 0:
		return EigenEstimate[T]{Values: []numeric.Complex[T]{}, Converged: true}, nil
	case 1:
		return EigenEstimate[T]{Values: []numeric.Complex[T]{numeric.RealValue(d[0])}, Converged: true}, nil
	case 2:
		return EigenEstimate[T]{Values: eigen2(d[0], d[1], d[2], d[3]), Converged: true}, nil
	}

	o := gatherOptions(opts...)
	maxIter := o.iterations(DefaultMaxIterations)
	tol := T(o.tolerance(float64(numeric.ConvergenceTolerance[T]())))

	n := a.r
	work := a.Copy()
	est := EigenEstimate[T]{}
	var qr QRResult[T]
	for est.Iterations < maxIter {
		if qr, err = QR[T](work); err != nil {
			return EigenEstimate[T]{}, matrixErrorf(opEigenvalues, err)
		}
		if work, err = Mul[T](qr.R, qr.Q); err != nil {
			return EigenEstimate[T]{}, matrixErrorf(opEigenvalues, err)
		}
		est.Iterations++
		if offDiagonalSum(work) < tol {
			est.Converged = true

			break
		}
	}

	est.Values = make([]numeric.Complex[T], n)
	for i := 0; i < n; i++ {
		est.Values[i] = numeric.RealValue(work.data[i*n+i])
	}

	return est, nil
}

// eigen2 solves the characteristic polynomial of [[a,b],[c,d]].
func eigen2[T numeric.Float](a, b, c, d T) []numeric.Complex[T] {
	tr := a + d
	det := a*d - b*c
	disc := tr*tr - 4*det
	if disc >= 0 {
		s := numeric.Sqrt(disc)

		return []numeric.Complex[T]{
			numeric.RealValue((tr + s) / 2),
			numeric.RealValue((tr - s) / 2),
		}
	}
	s := numeric.Sqrt(-disc)

	return []numeric.Complex[T]{
		{Real: tr / 2, Imag: s / 2},
		{Real: tr / 2, Imag: -s / 2},
	}
}

// offDiagonalSum returns Σ_{i≠j} |A[i,j]| of a square Dense.
func offDiagonalSum[T numeric.Float](a *Dense[T]) T {
	var sum T
	n := a.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				sum += numeric.Abs(a.data[i*n+j])
			}
		}
	}

	return sum
}

// EigenSym performs Jacobi eigenvalue decomposition of a symmetric matrix.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol) with tol = max(DefaultSymmetricTolerance, 100·ε(T))
//     unless WithTolerance overrides it.
//   - Stage 2: A := copy(m), V := I.
//   - Stage 3: repeat: pick (p,q) maximizing |A[p,q]| over the strict upper
//     triangle; stop once it is below tol. Otherwise compute the rotation
//     θ = (A[q,q]−A[p,p])/(2·A[p,q]), t = sign(θ)/(|θ|+√(θ²+1)),
//     c = 1/√(t²+1), s = t·c, apply it to A (symmetrically) and accumulate into V.
//   - Stage 4: read eigenvalues off the diagonal; sort ascending and permute
//     the columns of V to match.
//
// Returns:
//   - EigenDecomposition with A·V[:,k] = Values[k]·V[:,k] and V orthogonal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry,
//     ErrEigenFailed (rotation cap reached before convergence).
//
// Complexity:
//   - O(n²) per pivot search plus O(n) per rotation; typically O(n²) rotations.
func EigenSym[T numeric.Float](m Matrix[T], opts ...Option) (EigenDecomposition[T], error) {
	o := gatherOptions(opts...)
	defTol := math.Max(DefaultSymmetricTolerance, float64(numeric.ConvergenceTolerance[T]()))
	tol := T(o.tolerance(defTol))

	if err := ValidateSymmetric(m, tol); err != nil {
		return EigenDecomposition[T]{}, matrixErrorf(opEigenSym, err)
	}
	src, err := toDense(m)
	if err != nil {
		return EigenDecomposition[T]{}, matrixErrorf(opEigenSym, err)
	}

	n := src.r
	a := src.Copy()
	v := identity[T](n)
	maxIter := o.iterations(max(DefaultMaxIterations, jacobiRotationFactor*n*n))

	var (
		iter, i, j, p, q   int
		maxOff, off        T
		app, aqq, apq      T
		aip, aiq, vip, viq T
		theta, t, c, s     T
		converged          bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = numeric.Abs(a.data[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true

			break
		}
		if iter == maxIter {
			break
		}

		app, aqq, apq = a.data[p*n+p], a.data[q*n+q], a.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = T(math.Copysign(1/(math.Abs(float64(theta))+math.Hypot(float64(theta), 1)), float64(theta)))
		c = 1 / numeric.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a.data[i*n+p], a.data[i*n+q]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q] = s*aip + c*aiq
			a.data[q*n+i] = a.data[i*n+q]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			vip, viq = v.data[i*n+p], v.data[i*n+q]
			v.data[i*n+p] = c*vip - s*viq
			v.data[i*n+q] = s*vip + c*viq
		}
	}
	if !converged {
		return EigenDecomposition[T]{}, matrixErrorf(opEigenSym,
			fmt.Errorf("max |off-diagonal| %g after %d rotations: %w", float64(maxOff), maxIter, ErrEigenFailed))
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		ax, ay := a.data[x*n+x], a.data[y*n+y]
		switch {
		case ax < ay:
			return -1
		case ax > ay:
			return 1
		}

		return 0
	})

	out := EigenDecomposition[T]{Values: make([]T, n), Vectors: &Dense[T]{r: n, c: n, data: make([]T, n*n)}}
	for k, col := range order {
		out.Values[k] = a.data[col*n+col]
		for i = 0; i < n; i++ {
			out.Vectors.data[i*n+k] = v.data[i*n+col]
		}
	}

	return out, nil
}
