// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, the Kronecker product and a tolerance-based
// comparison. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Notes:
//   - Each kernel has a *Dense fast path over the flat backing slices and a
//     generic At/Set fallback with the same fixed loop order.
//   - Inputs are never mutated; every result is a freshly allocated *Dense.

package matrix

import (
	"fmt"
	"math"
)

// zeroSum is the initial value of every accumulation.
const zeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opKron      = "Kron"
	opKronAll   = "KronAll"
	opAllClose  = "AllClose"
	opIdentity  = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = zeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Kron computes the Kronecker product A ⊗ B.
//
// Layout:
//
//	(A ⊗ B)[i1*rB + i2, j1*cB + j2] = A[i1,j1] * B[i2,j2]
//
// so the row/column index of A is the most significant digit. This is the
// ordering used when a Kronecker-factored matrix is materialized.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(rA*cA*rB*cB), Space O(rA*cA*rB*cB).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	ra, ca := a.Rows(), a.Cols()
	rb, cb := b.Rows(), b.Cols()
	cols := ca * cb
	res, err := NewDense(ra*rb, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	// Read B once into a flat slice so the hot loop never goes through At.
	bFlat, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	var i1, j1, i2, j2, base int
	var av float64
	for i1 = 0; i1 < ra; i1++ {
		for j1 = 0; j1 < ca; j1++ {
			av, err = a.At(i1, j1)
			if err != nil {
				return nil, matrixErrorf(opKron, err)
			}
			if av == 0 {
				continue // block stays zero
			}
			for i2 = 0; i2 < rb; i2++ {
				base = (i1*rb+i2)*cols + j1*cb
				for j2 = 0; j2 < cb; j2++ {
					res.data[base+j2] = av * bFlat[i2*cb+j2]
				}
			}
		}
	}

	return res, nil
}

// KronAll folds Kron left to right: ms[0] ⊗ ms[1] ⊗ … ⊗ ms[k-1].
// A single operand is returned as a *Dense copy.
//
// Errors:
//   - ErrInvalidDimensions when no operand is given; ErrNilMatrix.
func KronAll(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opKronAll, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opKronAll, err)
	}
	acc, err := toDense(ms[0])
	if err != nil {
		return nil, matrixErrorf(opKronAll, err)
	}
	for i := 1; i < len(ms); i++ {
		if acc, err = Kron(acc, ms[i]); err != nil {
			return nil, matrixErrorf(opKronAll, fmt.Errorf("operand %d: %w", i, err))
		}
	}

	return acc, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity: Time O(r*c). Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			// The negated form also rejects NaN on either side.
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// flatten reads m into a fresh row-major slice (copy of data for *Dense).
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.RawData(), nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if out[i*c+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// toDense returns m as an independent *Dense (deep copy).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	data, err := flatten(m)
	if err != nil {
		return nil, err
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	copy(res.data, data)

	return res, nil
}
