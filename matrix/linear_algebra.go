// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, LU factorization, determinant, inverse and
// tolerance-based comparison. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Non-*Dense inputs are copied once into a Dense and then share the fast path.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opLU       = "LU"
	opDet      = "Det"
	opInverse  = "Inverse"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major buffers, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := ad.r, ad.c, bd.c
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik float64
	var rowA, rowB, rowC int
	for i = 0; i < r; i++ {
		rowA = i * n
		rowC = i * c
		for k = 0; k < n; k++ {
			aik = ad.data[rowA+k]
			if aik == 0 {
				continue
			}
			rowB = k * c
			for j = 0; j < c; j++ {
				out.data[rowC+j] += aik * bd.data[rowB+j]
			}
		}
	}

	return out, nil
}

// LU computes a row-pivoted Doolittle factorization P·A = L·U.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a scratch buffer.
//   - Stage 2: For each column k pick the row with the largest |A[i,k]| (i ≥ k),
//     swap it into place, then eliminate below the pivot, storing the
//     multipliers in the strict lower triangle.
//   - Stage 3: Split the scratch buffer into unit-lower L and upper U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (an all-zero pivot column).
//
// Determinism:
//   - Ties on |pivot| resolve to the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := src.r
	a := make([]float64, len(src.data))
	copy(a, src.data)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var i, j, k, p int
	var best, v, f, pivot float64
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p = k
		best = math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	L, err := NewIdentity(n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Det returns the determinant of a square matrix.
//
// Behavior highlights:
//   - det(0×0) == 1 (empty product).
//   - A matrix whose LU hits an all-zero pivot column has det == 0 exactly;
//     this is reported as (0, nil), not as an error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if m.Rows() == 0 {
		return 1, nil
	}

	f, err := LU(m)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}

		return 0, matrixErrorf(opDet, err)
	}

	n := f.Size()
	det := f.Sign
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det, nil
}

// Inverse computes A^{-1} from the pivoted LU factorization.
// Produces a new Dense matrix; does not mutate the input.
//
// Implementation:
//   - Stage 1: Validate m (non-nil, square); factorize P·A = L·U.
//   - Stage 2: Reject a numerically singular U: any |u_kk| <= n·eps·max|a_ij|
//     is ErrSingular (eps from WithEpsilon, DefaultEpsilon otherwise).
//   - Stage 3: For each canonical basis column e_col:
//   - Forward solve L*y = P*e_col (top-down).
//   - Backward solve U*x = y      (bottom-up).
//   - Write x into column `col` of the result.
//   - Stage 4: Reject non-finite results (overflow) with ErrNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular, ErrNaNInf.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if n == 0 {
		return inv, nil
	}

	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = checkPivots(f, pivotTolerance(m, gatherOptions(opts...).Epsilon())); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int
		sum, pivot float64
		rhs        float64
		y          = make([]float64, n)
		x          = make([]float64, n)
		Ld, Ud     = f.L.data, f.U.data
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += Ld[i*n+k] * y[k]
			}
			rhs = 0
			if f.Perm[i] == col {
				rhs = 1
			}
			y[i] = rhs - sum
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += Ud[i*n+k] * x[k]
			}
			pivot = Ud[i*n+i]
			x[i] = (y[i] - sum) / pivot
		}
		for i = 0; i < n; i++ {
			if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
				return nil, matrixErrorf(opInverse, denseErrorf(ctxSet, i, col, ErrNaNInf))
			}
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// pivotTolerance returns n·eps·max|a_ij|, the smallest pivot magnitude
// Inverse accepts for m.
func pivotTolerance(m Matrix, eps float64) float64 {
	var (
		i, j int
		v    float64
		maxA float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.Abs(v) > maxA {
				maxA = math.Abs(v)
			}
		}
	}

	return float64(m.Rows()) * eps * maxA
}

// checkPivots reports ErrSingular for the first diagonal entry of U whose
// magnitude does not exceed tol. A zero tol only rejects exact zeros.
func checkPivots(f *LUFactors, tol float64) error {
	n := f.Size()
	for k := 0; k < n; k++ {
		if math.Abs(f.U.data[k*n+k]) <= tol {
			return fmt.Errorf("pivot %d at or below %g: %w", k, tol, ErrSingular)
		}
	}

	return nil
}

// Equal reports exact element-wise equality of shapes and values.
// Nil matrices are equal only to each other.
func Equal(a, b Matrix) bool {
	an, bn := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if an || bn {
		return an && bn
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| everywhere.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite or negative tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if !isFiniteTol(rtol) || !isFiniteTol(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

func isFiniteTol(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0
}
