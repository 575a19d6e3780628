// SPDX-License-Identifier: MIT
package tt

import (
	"fmt"

	"github.com/katalvlaran/ttkron/matrix"
)

// Full contracts all cores into the dense (ΠRows) × (ΠCols) matrix.
//
// Implementation:
//   - Keep a partial product P indexed by (row prefix, column prefix, open rank a).
//   - For each core G: P'[(ip,i), (jp,j), b] = Σ_a P[ip, jp, a] · G[a, i, j, b].
//   - After the last core the open rank is 1 and P is the full matrix.
//
// Row index digits are ordered with core 0 most significant, so for a
// Kronecker train Full() equals matrix.KronAll of the factors.
// Works for arbitrary tt-ranks.
//
// Errors:
//   - ErrTooLarge if the result, or any partial product on the way (which
//     carries an extra tt-rank index), would exceed MaxFullElements values.
//   - matrix.ErrNaNInf if the contraction overflows.
//
// Complexity: O(Σ_k M_k N_k r_{k-1} r_k) where M_k, N_k are prefix sizes.
func (t *TensorTrain) Full() (*matrix.Dense, error) {
	dims := make([]int, 0, len(t.shape.Rows)+len(t.shape.Cols))
	dims = append(append(dims, t.shape.Rows...), t.shape.Cols...)
	if _, ok := cappedProduct(dims...); !ok {
		return nil, fmt.Errorf("%s: %w", opFull, ErrTooLarge)
	}

	acc := []float64{1}
	mp, np, r := 1, 1, 1 // prefix rows, prefix cols, open rank
	var ip, jp, a, i, j, b, nn, dst, src int
	var v float64
	for k, c := range t.cores {
		size, ok := cappedProduct(mp, c.m, np, c.n, c.r1)
		if !ok {
			return nil, fmt.Errorf("%s: partial product after core %d: %w", opFull, k, ErrTooLarge)
		}
		nn = np * c.n
		next := make([]float64, size)
		for ip = 0; ip < mp; ip++ {
			for jp = 0; jp < np; jp++ {
				for a = 0; a < r; a++ {
					v = acc[(ip*np+jp)*r+a]
					if v == 0 {
						continue
					}
					for i = 0; i < c.m; i++ {
						for j = 0; j < c.n; j++ {
							dst = ((ip*c.m+i)*nn + jp*c.n + j) * c.r1
							src = c.offset(a, i, j, 0)
							for b = 0; b < c.r1; b++ {
								next[dst+b] += v * c.data[src+b]
							}
						}
					}
				}
			}
		}
		acc, mp, np, r = next, mp*c.m, nn, c.r1
	}

	full, err := matrix.NewDenseFrom(mp, np, acc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFull, err)
	}

	return full, nil
}

// cappedProduct multiplies positive factors and reports false as soon as the
// product would exceed MaxFullElements, before it can overflow int.
func cappedProduct(factors ...int) (int, bool) {
	p := 1
	for _, f := range factors {
		if f > MaxFullElements/p {
			return 0, false
		}
		p *= f
	}

	return p, true
}
