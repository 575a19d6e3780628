// SPDX-License-Identifier: MIT
package tt

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ttkron/matrix"
)

// NewCore builds an r0×m×n×r1 core holding a copy of data (row-major, see Core).
//
// Errors:
//   - ErrCoreDims if any dimension is ≤ 0.
//   - ErrCoreData if len(data) != r0*m*n*r1.
//   - matrix.ErrNaNInf if data holds a non-finite value.
//
// Complexity: O(r0*m*n*r1).
func NewCore(r0, m, n, r1 int, data []float64) (*Core, error) {
	if r0 <= 0 || m <= 0 || n <= 0 || r1 <= 0 {
		return nil, fmt.Errorf("NewCore(%d,%d,%d,%d): %w", r0, m, n, r1, ErrCoreDims)
	}
	if len(data) != r0*m*n*r1 {
		return nil, fmt.Errorf("NewCore(%d,%d,%d,%d): len=%d: %w", r0, m, n, r1, len(data), ErrCoreData)
	}
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewCore: offset %d: %w", idx, matrix.ErrNaNInf)
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Core{r0: r0, m: m, n: n, r1: r1, data: buf}, nil
}

// CoreFromMatrix expands an m×n matrix into a 1×m×n×1 core (the Kronecker-factor form).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input; read errors from At.
func CoreFromMatrix(a matrix.Matrix) (*Core, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("CoreFromMatrix: %w", err)
	}
	m, n := a.Rows(), a.Cols()
	data := make([]float64, m*n)
	var err error
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if data[i*n+j], err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("CoreFromMatrix: %w", err)
			}
		}
	}

	return NewCore(1, m, n, 1, data)
}

// Dims returns (r0, m, n, r1).
func (c *Core) Dims() (r0, m, n, r1 int) { return c.r0, c.m, c.n, c.r1 }

// IsSquare reports whether the core's row and column modes are equal (m == n).
func (c *Core) IsSquare() bool { return c.m == c.n }

// offset is the row-major offset of (a, i, j, b); callers check bounds.
func (c *Core) offset(a, i, j, b int) int {
	return ((a*c.m+i)*c.n+j)*c.r1 + b
}

// At returns core[a, i, j, b].
//
// Errors: ErrOutOfRange.
func (c *Core) At(a, i, j, b int) (float64, error) {
	if a < 0 || a >= c.r0 || i < 0 || i >= c.m || j < 0 || j >= c.n || b < 0 || b >= c.r1 {
		return 0, fmt.Errorf("Core.At(%d,%d,%d,%d): %w", a, i, j, b, ErrOutOfRange)
	}

	return c.data[c.offset(a, i, j, b)], nil
}

// Slice returns the m×n matrix core[a, :, :, b] as a fresh *matrix.Dense.
// For a Kronecker factor (r0 = r1 = 1), Slice(0, 0) is the factor itself.
//
// Errors: ErrOutOfRange.
// Complexity: O(m*n).
func (c *Core) Slice(a, b int) (*matrix.Dense, error) {
	if a < 0 || a >= c.r0 || b < 0 || b >= c.r1 {
		return nil, fmt.Errorf("Core.Slice(%d,%d): %w", a, b, ErrOutOfRange)
	}
	vals := make([]float64, c.m*c.n)
	var i, j int
	for i = 0; i < c.m; i++ {
		for j = 0; j < c.n; j++ {
			vals[i*c.n+j] = c.data[c.offset(a, i, j, b)]
		}
	}

	return matrix.NewDenseFrom(c.m, c.n, vals)
}
