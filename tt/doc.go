// Package tt holds tensor-train (TT) values: a large matrix or tensor stored
// as an ordered chain of small 4-D cores linked by tt-ranks.
//
// A TT matrix of k cores represents an (m₁⋯m_k) × (n₁⋯n_k) matrix whose entry
// at row digits (i₁…i_k) and column digits (j₁…j_k) is the product
//
//	G₁[:, i₁, j₁, :] · G₂[:, i₂, j₂, :] ⋯ G_k[:, i_k, j_k, :]
//
// of r_{t-1}×r_t slices. The tt-rank sequence r₀…r_k always starts and ends
// with 1. When every rank is 1 the chain degenerates into a plain Kronecker
// product of the k factor matrices; package kron operates on that case.
//
// Values are immutable: New and FromKronecker copy their inputs and all
// accessors return copies (cores themselves expose no mutators).
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 1}})
//	b, _ := matrix.NewFromRows([][]float64{{1, 1}, {0, 1}})
//	t, _ := tt.FromKronecker(a, b)
//	full, _ := t.Full() // 4×4 dense a ⊗ b
package tt
