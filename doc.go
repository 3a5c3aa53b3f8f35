// SPDX-License-Identifier: MIT

// Package linalg is a small dense linear-algebra engine for float32 and
// float64, with an interactive calculator and a benchmark suite on top.
//
// Everything lives in subpackages:
//
//	numeric/     Float constraint, precision-aware epsilon, Complex
//	vector/      Vector[T]: arithmetic, dot/cross, norms, angle, projection
//	matrix/      Dense[T]: arithmetic, blocked Mul, determinant, inverse,
//	             LU, QR, eigenvalues, statistics, element-wise transforms
//	calculator/  menu-driven session over an io.Reader/io.Writer pair
//	benchmark/   timed cases, accuracy checks and a printable report
//	cmd/linalg/  the command-line entry point
//
// Quick example:
//
//	A, _ := matrix.FromRows([][]float64{{4, 1}, {2, 3}})
//	det, _ := matrix.Determinant(A)      // 10
//	inv, _ := matrix.Inverse(A)          // A⁻¹
//	eig, _ := matrix.Eigenvalues(A)      // 5+0i, 2+0i
//	v := vector.Of(1.0, 2.0, 3.0)
//	c, _ := v.Cross(vector.Of(4.0, 5.0, 6.0)) // [-3, 6, -3]
//
// Tolerances scale with the element type: ε is 2⁻⁵² for float64 and 2⁻²³
// for float32 (see numeric.Epsilon). Every fallible operation returns an
// error wrapping one of the package sentinels; test with errors.Is.
package linalg
