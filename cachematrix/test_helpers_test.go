// SPDX-License-Identifier: MIT
// Package cachematrix_test contains test helpers shared by the cell and solver tests.

package cachematrix_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/reyl27/ProgrammingAssignment2/cachematrix"
	"github.com/reyl27/ProgrammingAssignment2/matrix"
)

// logLine is one decoded zerolog JSON record.
type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
	Cached  *bool  `json:"cached"`
}

// logSink captures solver diagnostics in memory.
type logSink struct {
	buf bytes.Buffer
}

func (s *logSink) logger() zerolog.Logger { return zerolog.New(&s.buf) }

// Lines DECODES every captured record or fails the test.
func (s *logSink) Lines(t *testing.T) []logLine {
	t.Helper()
	var out []logLine
	sc := bufio.NewScanner(bytes.NewReader(s.buf.Bytes()))
	for sc.Scan() {
		var l logLine
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l), "bad log line %q", sc.Text())
		out = append(out, l)
	}
	require.NoError(t, sc.Err())

	return out
}

// Messages RETURNS just the message fields, in order.
func (s *logSink) Messages(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, l := range s.Lines(t) {
		out = append(out, l.Message)
	}

	return out
}

func (s *logSink) Reset() { s.buf.Reset() }

// countingInverter WRAPS matrix.Inverse and counts calls.
type countingInverter struct {
	calls int
}

func (c *countingInverter) Invert(m matrix.Matrix) (matrix.Matrix, error) {
	c.calls++

	return matrix.Inverse(m)
}

// MustDenseFrom BUILDS a Dense from a literal or fails the test.
func MustDenseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RandInvertible RETURNS a random strictly diagonally dominant n×n matrix.
func RandInvertible(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n) + 1
	}

	return MustDenseFrom(t, rows)
}

// RequireInverseClose ASSERTS r carries an inverse matching want within tol.
func RequireInverseClose(t *testing.T, want [][]float64, r cachematrix.Result, tol float64) {
	t.Helper()
	require.True(t, r.OK(), "want inverse, got %v", r)
	ok, err := matrix.AllClose(r.Value(), MustDenseFrom(t, want), 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "inverse mismatch:\n%v", r)
}
