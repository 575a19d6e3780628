// SPDX-License-Identifier: MIT
package kron

import (
	"math"

	"github.com/katalvlaran/ttkron/matrix"
	"github.com/katalvlaran/ttkron/tt"
)

const (
	opDeterminant    = "Determinant"
	opLogDeterminant = "LogDeterminant"
)

// Determinant returns det(A₁ ⊗ … ⊗ A_k) = Π det(A_i)^(N/n_i), N = Π n_i.
//
// Implementation:
//   - Stage 1: validate (structure, then square cores).
//   - Stage 2: det(A_i) per factor, sequential or fanned out (WithParallel).
//   - Stage 3: multiply the powered terms in factor order.
//
// Errors:
//   - ErrStructure (with ErrNilTrain / ErrNotKronecker / ErrNonSquareCore).
//   - *CoreError wrapping a matrix error for a failing factor.
//
// Notes:
//   - The product is formed in the direct domain and can overflow to ±Inf
//     or underflow to 0 for large N. Use LogDeterminant for those sizes.
//
// Complexity: O(Σ n_i³).
func Determinant(t *tt.TensorTrain, opts ...Option) (float64, error) {
	factors, err := validate(opDeterminant, t)
	if err != nil {
		return 0, err
	}
	cfg := gatherOptions(opts...)

	dets := make([]float64, len(factors))
	err = forEachCore(cfg, len(factors), func(i int) error {
		d, err := matrix.Det(factors[i])
		if err != nil {
			return &CoreError{Op: opDeterminant, Core: i, Err: err}
		}
		dets[i] = d

		return nil
	})
	if err != nil {
		return 0, err
	}

	n, total := sides(factors)
	det := 1.0
	for i, d := range dets {
		det *= math.Pow(d, total/n[i])
	}

	return det, nil
}

// LogDeterminant returns log det(A₁ ⊗ … ⊗ A_k) = Σ log det(A_i)·(N/n_i).
//
// Each log|det(A_i)| is read from the LU factorization, so no per-factor
// determinant is ever formed explicitly and neither stage can overflow.
//
// Errors:
//   - ErrStructure (with ErrNilTrain / ErrNotKronecker / ErrNonSquareCore).
//   - *CoreError wrapping ErrNonPositiveDeterminant when some det(A_i) ≤ 0;
//     the lowest such factor index is reported.
//
// Complexity: O(Σ n_i³).
func LogDeterminant(t *tt.TensorTrain, opts ...Option) (float64, error) {
	factors, err := validate(opLogDeterminant, t)
	if err != nil {
		return 0, err
	}
	cfg := gatherOptions(opts...)

	logs := make([]float64, len(factors))
	err = forEachCore(cfg, len(factors), func(i int) error {
		logAbs, sign, err := matrix.LogDet(factors[i])
		if err != nil {
			return &CoreError{Op: opLogDeterminant, Core: i, Err: err}
		}
		if sign <= 0 || math.IsInf(logAbs, -1) {
			return &CoreError{Op: opLogDeterminant, Core: i, Err: ErrNonPositiveDeterminant}
		}
		logs[i] = logAbs

		return nil
	})
	if err != nil {
		return 0, err
	}

	n, total := sides(factors)
	var sum float64
	for i, l := range logs {
		sum += l * (total / n[i])
	}

	return sum, nil
}
