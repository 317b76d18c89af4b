// SPDX-License-Identifier: MIT

package cachematrix

import "github.com/reyl27/ProgrammingAssignment2/matrix"

// defaultSolver backs SolveCached; it logs to stderr.
var defaultSolver = NewSolver()

// MakeCacheCell creates a cache cell for initial (nil means "no matrix yet").
func MakeCacheCell(initial matrix.Matrix) *Cell {
	return New(initial)
}

// SolveCached solves c with the package default solver.
func SolveCached(c Cache) (Result, error) {
	return defaultSolver.Solve(c)
}
