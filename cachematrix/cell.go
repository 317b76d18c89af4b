// SPDX-License-Identifier: MIT

package cachematrix

import (
	"github.com/reyl27/ProgrammingAssignment2/matrix"
)

// Cache is the capability set Solve needs from a cache object.
// *Cell is the canonical implementation.
type Cache interface {
	Matrix() matrix.Matrix
	Inverse() Result
	SetInverse(r Result)
	Message() string
	SetMessage(msg string)
}

// State is the lifecycle of a cell's cached inverse.
type State uint8

const (
	StateUncomputed State = iota
	StateComputed
	StateFailed
)

// String returns a short lower-case label for logs.
func (s State) String() string {
	switch s {
	case StateComputed:
		return "computed"
	case StateFailed:
		return "failed"
	default:
		return "uncomputed"
	}
}

// Cell holds a matrix together with its cached inverse and diagnostic.
//
// The cell owns its matrix: New and Reset store a clone, and Matrix returns a
// clone, so the cached inverse can never go stale behind the cell's back.
//
// A Cell is not safe for concurrent use. One goroutine at a time may call
// Reset or Solve on a given cell.
type Cell struct {
	m       matrix.Matrix
	inverse Result
	message string
}

var _ Cache = (*Cell)(nil)

// New creates a cell holding initial with an empty cache.
// A nil initial leaves the cell without a usable matrix; Solve reports it as
// non-square.
func New(initial matrix.Matrix) *Cell {
	return &Cell{m: own(initial)}
}

// NewFromRows is New over a row-of-rows literal.
func NewFromRows(rows [][]float64) (*Cell, error) {
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, err
	}

	return &Cell{m: d}, nil
}

// Reset replaces the matrix and clears the cached inverse and message together.
func (c *Cell) Reset(y matrix.Matrix) {
	c.m = own(y)
	c.inverse = Result{}
	c.message = ""
}

// Matrix returns a copy of the current matrix, or nil if the cell has none.
func (c *Cell) Matrix() matrix.Matrix {
	if c.m == nil {
		return nil
	}

	return c.m.Clone()
}

// SetInverse overwrites the cached inverse.
func (c *Cell) SetInverse(r Result) { c.inverse = r }

// Inverse returns the cached inverse; KindNone means not yet computed.
func (c *Cell) Inverse() Result { return c.inverse }

// SetMessage overwrites the cached diagnostic.
func (c *Cell) SetMessage(msg string) { c.message = msg }

// Message returns the cached diagnostic ("" unless a failure is cached).
func (c *Cell) Message() string { return c.message }

// State reports where the cell is in Uncomputed → Computed | Failed.
func (c *Cell) State() State {
	switch c.inverse.Kind() {
	case KindInverse:
		return StateComputed
	case KindFailure:
		return StateFailed
	default:
		return StateUncomputed
	}
}

// own clones m unless it is nil (untyped or typed).
func own(m matrix.Matrix) matrix.Matrix {
	if matrix.ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}
