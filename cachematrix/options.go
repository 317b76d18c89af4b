// SPDX-License-Identifier: MIT

// Package cachematrix: functional configuration for Solver.
//
// Defaults:
//   - diagnostics go to a timestamped zerolog logger on stderr;
//   - determinant and inverse come from the matrix package;
//   - a matrix is singular only when its determinant is exactly 0.
//
// With* constructors panic on nonsensical values (programmer error).
package cachematrix

import (
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/reyl27/ProgrammingAssignment2/matrix"
)

// DefaultSingularTolerance is the |det| at or below which a matrix counts as singular.
const DefaultSingularTolerance = 0.0

const (
	panicNilInverter      = "cachematrix: WithInverter: inverter must not be nil"
	panicNilDeterminant   = "cachematrix: WithDeterminant: determinant must not be nil"
	panicToleranceInvalid = "cachematrix: WithSingularTolerance: tol must be finite, non-negative"
)

// InverterFunc computes the inverse of a square, non-singular matrix.
type InverterFunc func(m matrix.Matrix) (matrix.Matrix, error)

// DeterminantFunc computes the determinant of a square matrix.
type DeterminantFunc func(m matrix.Matrix) (float64, error)

// Option configures a Solver.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	invert InverterFunc
	det    DeterminantFunc
	tol    float64
}

// WithLogger routes diagnostics to l. Use zerolog.Nop() to silence them.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithInverter replaces the inversion routine.
func WithInverter(f InverterFunc) Option {
	if f == nil {
		panic(panicNilInverter)
	}

	return func(o *options) { o.invert = f }
}

// WithDeterminant replaces the determinant routine used by the singularity check.
func WithDeterminant(f DeterminantFunc) Option {
	if f == nil {
		panic(panicNilDeterminant)
	}

	return func(o *options) { o.det = f }
}

// WithSingularTolerance treats |det| <= tol as singular.
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// defaultInverter is matrix.Inverse with the default pivot tolerance.
func defaultInverter(m matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Inverse(m)
}

func gatherOptions(user ...Option) options {
	o := options{
		logger: defaultLogger(),
		invert: defaultInverter,
		det:    matrix.Det,
		tol:    DefaultSingularTolerance,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
