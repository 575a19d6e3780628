// SPDX-License-Identifier: MIT
package kron

import (
	"github.com/katalvlaran/ttkron/matrix"
	"github.com/katalvlaran/ttkron/tt"
)

// IsKronecker reports whether t is a TT matrix whose tt-ranks are all 1,
// i.e. a plain Kronecker product of its cores. It never fails: a nil train
// or a TT vector simply reports false. Squareness is not checked here.
func IsKronecker(t *tt.TensorTrain) bool {
	if t == nil || !t.IsMatrix() {
		return false
	}

	return t.MaxRank() == 1
}

// validate is the single precondition gate shared by every operation.
// It checks structure first and then squareness of every core, touching
// no numeric data, and returns the factor matrices core[0,:,:,0].
func validate(op string, t *tt.TensorTrain) ([]*matrix.Dense, error) {
	if t == nil {
		return nil, structuralError(op, ErrNilTrain, "input")
	}
	if !IsKronecker(t) {
		return nil, structuralError(op, ErrNotKronecker, "ranks %v", t.Ranks())
	}

	cores := t.Cores()
	for i, c := range cores {
		if !c.IsSquare() {
			_, m, n, _ := c.Dims()
			return nil, structuralError(op, ErrNonSquareCore, "core %d is %dx%d", i, m, n)
		}
	}

	factors := make([]*matrix.Dense, len(cores))
	var err error
	for i, c := range cores {
		if factors[i], err = c.Slice(0, 0); err != nil {
			return nil, &CoreError{Op: op, Core: i, Err: err}
		}
	}

	return factors, nil
}

// sides returns each factor's side length n_i and N = Π n_i, both as float64
// since they only ever feed exponents.
func sides(factors []*matrix.Dense) (n []float64, total float64) {
	n = make([]float64, len(factors))
	total = 1
	for i, f := range factors {
		n[i] = float64(f.Rows())
		total *= n[i]
	}

	return n, total
}
