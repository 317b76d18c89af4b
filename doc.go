// Package programmingassignment2 computes matrix inverses once and serves
// them from a cache until the matrix changes.
//
// The work is split between two subpackages:
//
//	matrix/      - Dense storage, validators, pivoted LU, Det and Inverse
//	cachematrix/ - Cell (matrix + cached inverse + message) and Solver
//
// Quick example:
//
//	c, _ := cachematrix.NewFromRows([][]float64{{1, 2}, {2, 1}})
//	r, _ := cachematrix.SolveCached(c) // computes and caches
//	r, _ = cachematrix.SolveCached(c)  // served from the cache
//	fmt.Print(r.Value())
//
// A non-square or singular matrix is an ordinary outcome: Solve returns a
// failure Result, caches it, and logs the diagnostic message through zerolog.
//
//	go get github.com/reyl27/ProgrammingAssignment2/cachematrix
package programmingassignment2
