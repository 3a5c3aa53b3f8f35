// Package matrix offers a generic dense matrix and the classical algorithms
// built on it.
//
// The matrix package provides:
//
//   - Matrix[T], the minimal interface every kernel accepts, and *Dense[T],
//     a row-major implementation with bounds-checked access.
//   - Element-wise arithmetic (Add, Sub, Scale), Transpose, Trace and
//     tolerance-based Equal; pure functions return fresh matrices while the
//     *InPlace methods mutate the receiver.
//   - Mul with a cache-blocked kernel for operands wider than BlockSize.
//   - Determinant, LU (Doolittle, no pivoting), QR (modified Gram-Schmidt),
//     Inverse (Gauss-Jordan, partial pivoting) and Adjugate.
//   - Eigenvalues via the unshifted QR iteration and EigenSym via Jacobi
//     rotations for symmetric input.
//
// Errors are package sentinels wrapped with the failing operation; match
// them with errors.Is. Element types are float32 or float64 (or named types
// over them); tolerances scale with the machine epsilon of the type.
//
// See the examples in this package for usage patterns.
package matrix
