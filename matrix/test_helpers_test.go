// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/reyl27/ProgrammingAssignment2/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (copying) path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c Dense from row-major vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense RETURNS an r×c Dense with deterministic U(-1,1) values by seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// DiagDominant RETURNS a random n×n matrix made strictly diagonally dominant,
// hence invertible and well-conditioned.
func DiagDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n)+1)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose ASSERTS |want-got| <= atol + rtol*|want| element-wise.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	if got.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), got.Rows())
	}
	var i, j int
	var g, d, lim float64
	for i = 0; i < len(want); i++ {
		if got.Cols() != len(want[i]) {
			t.Fatalf("cols: want %d, got %d", len(want[i]), got.Cols())
		}
		for j = 0; j < len(want[i]); j++ {
			g = MustAt(t, got, i, j)
			d = g - want[i][j]
			if d < 0 {
				d = -d
			}
			lim = atol + rtol*abs(want[i][j])
			if d > lim {
				t.Fatalf("[%d,%d]: want %.15g, got %.15g (|diff|=%.3g > %.3g)", i, j, want[i][j], g, d, lim)
			}
		}
	}
}

// AssertErrorIs ASSERTS errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// AssertIdentity ASSERTS m ≈ I within tol.
func AssertIdentity(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	n := m.Rows()
	I := make([][]float64, n)
	for i := range I {
		I[i] = make([]float64, n)
		I[i][i] = 1
	}
	CompareClose(t, I, m, 0, tol)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
