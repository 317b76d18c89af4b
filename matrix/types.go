// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense storage and the kernels.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// LUFactors holds a row-pivoted Doolittle factorization P·A = L·U.
//   - L is unit lower triangular, U is upper triangular (both n×n Dense).
//   - Perm[i] is the source row of A placed at row i of P·A.
//   - Sign is +1 or -1, the parity of Perm (used by Det).
type LUFactors struct {
	L, U *Dense
	Perm []int
	Sign float64
}

// Size returns n for an n×n factorization.
func (f *LUFactors) Size() int { return len(f.Perm) }
