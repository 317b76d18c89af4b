// Package matrix offers a small dense linear-algebra core for float64 data.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and an optional
//     finite-only numeric policy.
//   - Validators (ValidateNotNil, ValidateSquare, ...) shared by all kernels.
//   - Kernels: Mul, LU (row-pivoted Doolittle), Det, Inverse, Equal, AllClose.
//
// Every kernel returns package sentinels (ErrNilMatrix, ErrDimensionMismatch,
// ErrSingular, ErrNaNInf, ...) wrapped with an operation tag; match them with
// errors.Is. Inputs are never mutated.
//
// Shapes with zero rows or columns are legal. A 0×0 matrix is square, has
// determinant 1 and is its own inverse.
package matrix
