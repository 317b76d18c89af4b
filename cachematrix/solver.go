// SPDX-License-Identifier: MIT

package cachematrix

import (
	"fmt"
	"math"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/reyl27/ProgrammingAssignment2/matrix"
)

// Solver computes, caches and returns inverses held by a Cache.
// A Solver carries only configuration; all state lives in the cells.
type Solver struct {
	log    zerolog.Logger
	invert InverterFunc
	det    DeterminantFunc
	tol    float64
}

// NewSolver builds a Solver from the defaults overridden by opts.
func NewSolver(opts ...Option) *Solver {
	o := gatherOptions(opts...)

	return &Solver{
		log:    o.logger,
		invert: o.invert,
		det:    o.det,
		tol:    o.tol,
	}
}

// Solve returns the inverse of the matrix held by c, computing it at most once
// per Reset.
//
// Implementation:
//   - Stage 1: reject a nil cache with ErrInvalidArgument ("Invalid input.").
//   - Stage 2: on a cache hit return the cached Result; a cached failure
//     re-emits the cached message.
//   - Stage 3: on a miss check shape, then determinant, then invert; store the
//     outcome with SetInverse (a failure calls SetMessage first).
//
// Behavior highlights:
//   - Non-square and singular matrices are ordinary outcomes: a failure Result
//     and a nil error. They are cached like successes.
//   - A failure inside the inverter returns ErrArithmetic and leaves the cache
//     untouched, so the next call retries.
//
// Complexity:
//   - O(1) on a hit; O(n^3) on a miss.
func (s *Solver) Solve(c Cache) (Result, error) {
	if isNilCache(c) {
		s.log.Error().Msg(MsgInvalidInput)

		return Result{}, fmt.Errorf("%s: %w", opSolve, ErrInvalidArgument)
	}

	if cached := c.Inverse(); !cached.IsNone() {
		if cached.IsFailure() {
			s.log.Warn().
				Bool("cached", true).
				Stringer("reason", cached.Reason()).
				Msg(c.Message())
		}

		return cached, nil
	}

	m := c.Matrix()
	result, err := s.compute(c, m)
	if err != nil {
		return Result{}, err
	}
	c.SetInverse(result)

	if result.IsFailure() {
		rows, cols := dims(m)
		s.log.Warn().
			Bool("cached", false).
			Stringer("reason", result.Reason()).
			Int("rows", rows).
			Int("cols", cols).
			Msg(result.Reason().Message())
	}

	return result, nil
}

// compute runs the shape check, the singularity check and the inversion.
func (s *Solver) compute(c Cache, m matrix.Matrix) (Result, error) {
	if !matrix.IsSquare(m) {
		c.SetMessage(MsgNonSquare)

		return Failure(ReasonNonSquare), nil
	}

	det, err := s.det(m)
	if err != nil {
		return Result{}, arithmeticf(err)
	}
	if math.Abs(det) <= s.tol {
		c.SetMessage(MsgSingular)

		return Failure(ReasonSingular), nil
	}

	inv, err := s.invert(m)
	if err != nil {
		return Result{}, arithmeticf(err)
	}
	if err = matrix.ValidateSquareNonNil(inv); err != nil {
		return Result{}, arithmeticf(err)
	}
	if inv.Rows() != m.Rows() {
		return Result{}, arithmeticf(matrix.ErrDimensionMismatch)
	}

	return Success(inv), nil
}

// isNilCache reports an untyped nil or a nil pointer behind the interface.
func isNilCache(c Cache) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

func dims(m matrix.Matrix) (int, int) {
	if matrix.ValidateNotNil(m) != nil {
		return 0, 0
	}

	return m.Rows(), m.Cols()
}
