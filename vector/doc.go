// Package vector provides a generic dense 1-D numeric container.
//
// Vector[T] supports element-wise arithmetic (pure and in-place variants),
// geometry (dot, cross, magnitude, normalization, distance, angle,
// projection and rejection) and whole-vector statistics. Binary operations
// require equal lengths and report ErrDimensionMismatch otherwise; equality
// is element-wise within 10·ε(T).
//
// The package is independent of package matrix: neither imports the other.
package vector
