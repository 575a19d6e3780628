// SPDX-License-Identifier: MIT
// Package kron: sentinel errors and the per-core numeric failure wrapper.
//
// Two kinds of failure leave this package:
//   - Structural: the input is not a Kronecker-factored square matrix. Every
//     such error matches ErrStructure plus one specific cause, and is
//     returned before any factor is decomposed.
//   - Numeric: a dense primitive failed on one factor. These arrive as
//     *CoreError wrapping the matrix sentinel unchanged, so
//     errors.Is(err, matrix.ErrSingular) keeps working.

package kron

import (
	"errors"
	"fmt"
)

var (
	// ErrStructure is the kind shared by every structural validation failure.
	ErrStructure = errors.New("kron: not a Kronecker product of square matrices")

	// ErrNilTrain indicates a nil *tt.TensorTrain.
	ErrNilTrain = errors.New("kron: nil tensor train")

	// ErrNotKronecker indicates a TT vector, or a TT matrix with a tt-rank > 1.
	ErrNotKronecker = errors.New("kron: tt-ranks must all be 1")

	// ErrNonSquareCore indicates a factor whose row and column modes differ.
	ErrNonSquareCore = errors.New("kron: tt-cores must be square")

	// ErrNonPositiveDeterminant indicates a factor with det ≤ 0 in LogDeterminant.
	ErrNonPositiveDeterminant = errors.New("kron: factor determinant is not positive")
)

// structuralError pairs ErrStructure with the specific cause so callers may
// match either one.
func structuralError(op string, cause error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w: %w", op, fmt.Sprintf(format, args...), ErrStructure, cause)
}

// CoreError reports a numeric failure attributable to a single factor.
type CoreError struct {
	Op   string // operation tag, e.g. "Inverse"
	Core int    // zero-based factor index
	Err  error  // underlying cause (matrix.ErrSingular, ...)
}

// Error implements error.
func (e *CoreError) Error() string {
	return fmt.Sprintf("%s: core %d: %v", e.Op, e.Core, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *CoreError) Unwrap() error { return e.Err }
