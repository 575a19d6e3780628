// SPDX-License-Identifier: MIT
package tt

import (
	"fmt"

	"github.com/katalvlaran/ttkron/matrix"
)

const (
	opNew           = "New"
	opFromKronecker = "FromKronecker"
	opFull          = "Full"
)

// New builds a TensorTrain from cores, a shape descriptor and tt-ranks.
//
// Implementation:
//   - Stage 1: structural checks on the lists (cores present, non-nil, rank count).
//   - Stage 2: boundary ranks equal 1; every rank ≥ 1.
//   - Stage 3: per core k, (r0, m, n, r1) == (ranks[k], Rows[k], Cols[k], ranks[k+1]);
//     a TT vector (shape.Cols == nil) requires n == 1.
//   - Stage 4: copy the slices so later caller mutations do not leak in.
//
// Errors:
//   - ErrNoCores, ErrNilCore, ErrRankMismatch, ErrBoundaryRank, ErrShapeMismatch.
//
// Complexity: O(k).
func New(cores []*Core, shape Shape, ranks []int) (*TensorTrain, error) {
	k := len(cores)
	if k == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrNoCores)
	}
	if len(ranks) != k+1 {
		return nil, fmt.Errorf("%s: %d ranks for %d cores: %w", opNew, len(ranks), k, ErrRankMismatch)
	}
	if ranks[0] != 1 || ranks[k] != 1 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrBoundaryRank)
	}
	if len(shape.Rows) != k || (shape.Cols != nil && len(shape.Cols) != k) {
		return nil, fmt.Errorf("%s: shape has %d/%d modes for %d cores: %w",
			opNew, len(shape.Rows), len(shape.Cols), k, ErrShapeMismatch)
	}

	for idx, c := range cores {
		if c == nil {
			return nil, fmt.Errorf("%s: core %d: %w", opNew, idx, ErrNilCore)
		}
		if c.r0 != ranks[idx] || c.r1 != ranks[idx+1] {
			return nil, fmt.Errorf("%s: core %d has ranks (%d,%d), want (%d,%d): %w",
				opNew, idx, c.r0, c.r1, ranks[idx], ranks[idx+1], ErrRankMismatch)
		}
		wantCols := 1
		if shape.Cols != nil {
			wantCols = shape.Cols[idx]
		}
		if c.m != shape.Rows[idx] || c.n != wantCols {
			return nil, fmt.Errorf("%s: core %d has modes (%d,%d), want (%d,%d): %w",
				opNew, idx, c.m, c.n, shape.Rows[idx], wantCols, ErrShapeMismatch)
		}
	}

	return &TensorTrain{
		cores: append([]*Core(nil), cores...),
		shape: shape.clone(),
		ranks: append([]int(nil), ranks...),
	}, nil
}

// FromKronecker builds the TT matrix A₁ ⊗ A₂ ⊗ … ⊗ A_k: one 1×m×n×1 core per
// factor, all tt-ranks 1. Factors need not be square here.
//
// Errors:
//   - ErrNoCores for an empty factor list; matrix.ErrNilMatrix for a nil factor.
func FromKronecker(factors ...matrix.Matrix) (*TensorTrain, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("%s: %w", opFromKronecker, ErrNoCores)
	}
	cores := make([]*Core, len(factors))
	shape := Shape{Rows: make([]int, len(factors)), Cols: make([]int, len(factors))}
	ranks := make([]int, len(factors)+1)
	ranks[0] = 1
	var err error
	for idx, f := range factors {
		if cores[idx], err = CoreFromMatrix(f); err != nil {
			return nil, fmt.Errorf("%s: factor %d: %w", opFromKronecker, idx, err)
		}
		shape.Rows[idx], shape.Cols[idx] = f.Rows(), f.Cols()
		ranks[idx+1] = 1
	}

	return New(cores, shape, ranks)
}

// IsMatrix reports whether t represents a matrix (as opposed to a vector / tensor).
func (t *TensorTrain) IsMatrix() bool { return t.shape.IsMatrix() }

// NDims returns the number of cores.
func (t *TensorTrain) NDims() int { return len(t.cores) }

// Ranks returns a copy of the tt-rank sequence (NDims()+1 values).
func (t *TensorTrain) Ranks() []int { return append([]int(nil), t.ranks...) }

// MaxRank returns the largest tt-rank.
func (t *TensorTrain) MaxRank() int {
	best := t.ranks[0]
	for _, r := range t.ranks[1:] {
		if r > best {
			best = r
		}
	}

	return best
}

// Shape returns a copy of the shape descriptor.
func (t *TensorTrain) Shape() Shape { return t.shape.clone() }

// Core returns core i. Cores are immutable, so the pointer is shared.
//
// Errors: ErrOutOfRange.
func (t *TensorTrain) Core(i int) (*Core, error) {
	if i < 0 || i >= len(t.cores) {
		return nil, fmt.Errorf("Core(%d): %w", i, ErrOutOfRange)
	}

	return t.cores[i], nil
}

// Cores returns the ordered core list (a new slice over shared immutable cores).
func (t *TensorTrain) Cores() []*Core { return append([]*Core(nil), t.cores...) }

// IsMatrix reports whether the descriptor belongs to a TT matrix.
func (s Shape) IsMatrix() bool { return s.Cols != nil }

// Size returns the dimensions of the represented full matrix: (ΠRows, ΠCols).
// A TT vector reports a single column. The products are not overflow-checked;
// Full applies its own MaxFullElements bound.
func (s Shape) Size() (rows, cols int) {
	rows, cols = 1, 1
	for _, r := range s.Rows {
		rows *= r
	}
	for _, c := range s.Cols {
		cols *= c
	}

	return rows, cols
}

func (s Shape) clone() Shape {
	out := Shape{Rows: append([]int(nil), s.Rows...)}
	if s.Cols != nil {
		out.Cols = append([]int{}, s.Cols...)
	}

	return out
}
