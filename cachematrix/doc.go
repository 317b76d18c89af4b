// Package cachematrix memoizes matrix inverses.
//
// A Cell holds a matrix plus its cached inverse and diagnostic message. A
// Solver fills the cache on the first Solve after New or Reset and returns
// the cached outcome on every later call:
//
//	c := cachematrix.MakeCacheCell(m)
//	r, err := cachematrix.SolveCached(c) // computes
//	r, err = cachematrix.SolveCached(c)  // cache hit
//	c.Reset(other)                       // drops the cached inverse
//
// Outcomes:
//
//	KindInverse  - r.Value() is the inverse.
//	KindFailure  - non-square or zero determinant; r.Reason() says which, and
//	               c.Message() holds "Non-square matrix." or "Non-singular matrix.".
//	KindNone     - returned with ErrInvalidArgument when c is nil.
//
// Failures are cached; only ErrInvalidArgument and ErrArithmetic come back as
// errors. Diagnostics are written to a zerolog.Logger (see WithLogger); the
// message field is always one of MsgInvalidInput, MsgNonSquare or MsgSingular.
//
// Cells are single-owner values and do no locking.
package cachematrix
