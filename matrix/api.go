// SPDX-License-Identifier: MIT
// Package matrix — public constructors & facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CholeskyOf factors m with the package default symmetry tolerance.
// Complexity: O(n^3).
func CholeskyOf(m Matrix) (*Dense, error) { return Cholesky(m, DefaultEpsilon) }
