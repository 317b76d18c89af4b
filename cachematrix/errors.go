// SPDX-License-Identifier: MIT

package cachematrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver misuse and numerical breakdown.
// Non-invertible inputs are NOT errors: they come back as a failure Result.
var (
	// ErrInvalidArgument indicates Solve was handed something that is not a
	// usable cache (nil interface or nil *Cell).
	ErrInvalidArgument = errors.New("cachematrix: invalid argument")

	// ErrArithmetic indicates the inversion routine failed after the shape and
	// determinant checks passed (overflow, NaN, unexpected zero pivot, or a
	// malformed result from a custom inverter).
	ErrArithmetic = errors.New("cachematrix: arithmetic failure")
)

// Diagnostic literals written to the solver's logger. They are part of the
// external surface and must not be reworded.
const (
	MsgInvalidInput = "Invalid input."
	MsgNonSquare    = "Non-square matrix."
	// MsgSingular is emitted for a zero determinant.
	// TODO: confirm with the product owner whether "Singular matrix." was intended.
	MsgSingular = "Non-singular matrix."
)

const opSolve = "Solve"

// arithmeticf tags cause as an ErrArithmetic; both stay matchable via errors.Is.
func arithmeticf(cause error) error {
	return fmt.Errorf("%s: %w: %w", opSolve, ErrArithmetic, cause)
}
