// SPDX-License-Identifier: MIT

package cachematrix

import "github.com/reyl27/ProgrammingAssignment2/matrix"

// Kind tags the three shapes a Result can take.
type Kind uint8

const (
	// KindNone means "no result": nothing cached yet, or Solve rejected its argument.
	KindNone Kind = iota
	// KindInverse carries a computed inverse.
	KindInverse
	// KindFailure marks a non-invertible matrix; see Reason.
	KindFailure
)

// String returns a short lower-case label for logs.
func (k Kind) String() string {
	switch k {
	case KindInverse:
		return "inverse"
	case KindFailure:
		return "failure"
	default:
		return "none"
	}
}

// FailureReason says why a matrix has no inverse.
type FailureReason uint8

const (
	ReasonNone FailureReason = iota
	ReasonNonSquare
	ReasonSingular
)

// String returns a short lower-case label for logs.
func (r FailureReason) String() string {
	switch r {
	case ReasonNonSquare:
		return "non-square"
	case ReasonSingular:
		return "singular"
	default:
		return "none"
	}
}

// Message returns the diagnostic literal that accompanies the reason.
func (r FailureReason) Message() string {
	switch r {
	case ReasonNonSquare:
		return MsgNonSquare
	case ReasonSingular:
		return MsgSingular
	default:
		return ""
	}
}

// Result is the outcome of an inversion: none, an inverse, or a failure.
// The zero value is KindNone.
type Result struct {
	kind   Kind
	value  matrix.Matrix
	reason FailureReason
}

// FailureSentinel is the canonical failure value. Any failure Result
// satisfies r.Is(FailureSentinel) regardless of its reason.
var FailureSentinel = Result{kind: KindFailure}

// Success wraps a computed inverse. The matrix is cloned so the Result owns it.
// A nil matrix yields the KindNone Result.
func Success(inv matrix.Matrix) Result {
	if matrix.ValidateNotNil(inv) != nil {
		return Result{}
	}

	return Result{kind: KindInverse, value: inv.Clone()}
}

// Failure builds the failure Result for reason.
func Failure(reason FailureReason) Result {
	return Result{kind: KindFailure, reason: reason}
}

// Kind reports which variant r holds.
func (r Result) Kind() Kind { return r.kind }

// IsNone reports whether r carries nothing.
func (r Result) IsNone() bool { return r.kind == KindNone }

// OK reports whether r carries an inverse.
func (r Result) OK() bool { return r.kind == KindInverse }

// IsFailure reports whether r is a non-invertible outcome.
func (r Result) IsFailure() bool { return r.kind == KindFailure }

// Is reports whether r and target are the same variant.
func (r Result) Is(target Result) bool { return r.kind == target.kind }

// Reason returns the failure reason, or ReasonNone for other kinds.
func (r Result) Reason() FailureReason { return r.reason }

// Value returns a copy of the inverse, or nil when r is not KindInverse.
// Mutating the copy never touches a cached Result.
func (r Result) Value() matrix.Matrix {
	if r.kind != KindInverse {
		return nil
	}

	return r.value.Clone()
}

// String renders r for debugging.
func (r Result) String() string {
	switch r.kind {
	case KindInverse:
		if s, ok := r.value.(interface{ String() string }); ok {
			return "inverse:\n" + s.String()
		}

		return "inverse"
	case KindFailure:
		return "failure: " + r.reason.String()
	default:
		return "none"
	}
}
