// SPDX-License-Identifier: MIT
// Package matrix — dense factorization primitives.
//
// Purpose:
//   - Determinant, log-determinant, inverse and lower Cholesky factor of a
//     small dense square matrix.
//   - The numerics are delegated to gonum (LAPACK-style pivoted LU and
//     Cholesky); this file only converts between Matrix and gonum's types and
//     translates failures into the package sentinels.
//
// Failure surface:
//   - Shape problems are detected before any factorization (ErrNilMatrix, ErrNonSquare).
//   - Inverse fails with ErrSingular, wrapping gonum's mat.Condition.
//   - Cholesky fails with ErrAsymmetry (tolerance check) or ErrNotPositiveDefinite.
//   - Det/LogDet never fail on numeric grounds: a singular input yields 0 / (-Inf).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opDet      = "Det"
	opLogDet   = "LogDet"
	opInverse  = "Inverse"
	opCholesky = "Cholesky"
)

// toGonum copies m into a freshly allocated *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	data, err := flatten(m)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// fromGonum copies any gonum matrix into a new *Dense (no numeric policy check:
// the values come out of a successful factorization).
func fromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			res.data[i*c+j] = src.At(i, j)
		}
	}

	return res, nil
}

// Det returns det(m) computed from a partially pivoted LU factorization.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Notes:
//   - The value is exp(log|det|)·sign, so it overflows to ±Inf (or underflows
//     to 0) for determinants outside the float64 range. Use LogDet then.
//
// Complexity: O(n^3).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return mat.Det(g), nil
}

// LogDet returns log|det(m)| and the sign of det(m) (−1, 0 or +1 semantics as
// reported by the LU factorization; a singular m gives logAbs = −Inf).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n^3).
func LogDet(m Matrix) (logAbs, sign float64, err error) {
	if err = ValidateSquare(m); err != nil {
		return 0, 0, matrixErrorf(opLogDet, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return 0, 0, matrixErrorf(opLogDet, err)
	}
	logAbs, sign = mat.LogDet(g)

	return logAbs, sign, nil
}

// Inverse computes A^{-1} using a partially pivoted LU factorization.
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when A is exactly singular or its condition number exceeds
//     mat.ConditionTolerance; the gonum mat.Condition is wrapped as well, so
//     errors.As(err, *mat.Condition) exposes the estimate.
//
// Complexity: O(n^3).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%w: %w", ErrSingular, err))
	}

	res, err := fromGonum(&inv)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// Cholesky returns the lower-triangular L with L·Lᵀ = m.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); the factorization itself only reads
//     the upper triangle, so asymmetry must be rejected up front.
//   - Stage 2: gonum Cholesky on the symmetric copy; a false result means m is
//     not positive-definite.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry, ErrNotPositiveDefinite.
//
// Complexity: O(n^3).
func Cholesky(m Matrix, tol float64) (*Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.Rows()
	var ch mat.Cholesky
	if ok := ch.Factorize(mat.NewSymDense(n, data)); !ok {
		return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
	}

	var l mat.TriDense
	ch.LTo(&l)

	res, err := fromGonum(&l)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	return res, nil
}
