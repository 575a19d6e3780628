// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with matrixErrorf(op, ErrX) so callers see "Op: matrix: ..." and still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> symmetry -> numeric (singular / not positive-definite).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., different shapes in AllClose, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a matrix cannot be inverted: it is exactly
	// singular or too ill-conditioned for the inverse to carry any precision.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned when a Cholesky factorization fails
	// because the (symmetric) input is not positive-definite.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive-definite")

	// ErrDataLength indicates that a flat backing slice does not hold rows*cols values.
	ErrDataLength = errors.New("matrix: data length does not match shape")
)
