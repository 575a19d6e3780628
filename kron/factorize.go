// SPDX-License-Identifier: MIT
package kron

import (
	"fmt"

	"github.com/katalvlaran/ttkron/matrix"
	"github.com/katalvlaran/ttkron/tt"
	"golang.org/x/sync/errgroup"
)

const (
	opInverse  = "Inverse"
	opCholesky = "Cholesky"
)

// Inverse returns (A₁ ⊗ … ⊗ A_k)⁻¹ = A₁⁻¹ ⊗ … ⊗ A_k⁻¹ as a new train with
// the input's shape and all tt-ranks 1. The input is never mutated.
//
// Errors:
//   - ErrStructure (with ErrNilTrain / ErrNotKronecker / ErrNonSquareCore).
//   - *CoreError wrapping matrix.ErrSingular for a singular or numerically
//     singular factor (lowest index reported). No partial result is returned.
//
// Complexity: O(Σ n_i³).
func Inverse(t *tt.TensorTrain, opts ...Option) (*tt.TensorTrain, error) {
	return rebuild(opInverse, t, gatherOptions(opts...), matrix.Inverse)
}

// Cholesky returns chol(A₁) ⊗ … ⊗ chol(A_k): a train of lower-triangular
// factors L_i with L_i·L_iᵀ = A_i, so the represented L satisfies L·Lᵀ = A.
// The input is never mutated.
//
// Errors:
//   - ErrStructure (with ErrNilTrain / ErrNotKronecker / ErrNonSquareCore).
//   - *CoreError wrapping matrix.ErrAsymmetry (beyond WithSymmetryTolerance)
//     or matrix.ErrNotPositiveDefinite.
//
// Complexity: O(Σ n_i³).
func Cholesky(t *tt.TensorTrain, opts ...Option) (*tt.TensorTrain, error) {
	cfg := gatherOptions(opts...)

	return rebuild(opCholesky, t, cfg, func(m matrix.Matrix) (*matrix.Dense, error) {
		return matrix.Cholesky(m, cfg.symTol)
	})
}

// rebuild validates t, maps every factor through transform and assembles the
// results into a fresh Kronecker train with t's shape and ranks all 1.
func rebuild(op string, t *tt.TensorTrain, cfg config, transform func(matrix.Matrix) (*matrix.Dense, error)) (*tt.TensorTrain, error) {
	factors, err := validate(op, t)
	if err != nil {
		return nil, err
	}

	cores := make([]*tt.Core, len(factors))
	err = forEachCore(cfg, len(factors), func(i int) error {
		out, err := transform(factors[i])
		if err != nil {
			return &CoreError{Op: op, Core: i, Err: err}
		}
		if cores[i], err = tt.CoreFromMatrix(out); err != nil {
			return &CoreError{Op: op, Core: i, Err: err}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	ranks := make([]int, len(cores)+1)
	for i := range ranks {
		ranks[i] = 1
	}
	res, err := tt.New(cores, t.Shape(), ranks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// forEachCore runs fn(0) … fn(k-1). With one worker it stops at the first
// error. With more it fans out through an errgroup bounded by cfg.workers,
// lets every call finish, and reports the error of the lowest index, so
// both modes fail identically.
func forEachCore(cfg config, k int, fn func(i int) error) error {
	if cfg.workers <= 1 || k < 2 {
		for i := 0; i < k; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	errs := make([]error, k)
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := 0; i < k; i++ {
		i := i
		g.Go(func() error {
			errs[i] = fn(i)
			return nil
		})
	}
	_ = g.Wait() // workers report through errs and always return nil

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
