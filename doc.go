// Package ttkron computes determinant, log-determinant, inverse and Cholesky
// factor of large square matrices stored as Kronecker products of small
// square factors, without ever forming the full matrix.
//
// Packages:
//
//   - matrix: dense row-major container, validators and the small dense
//     primitives (Det, LogDet, Inverse, Cholesky) each factor is run through.
//   - tt: the tensor-train value (cores, tt-ranks, shape) that carries a
//     factored matrix; FromKronecker builds one from factors, Full expands it.
//   - kron: the Kronecker-structured operations and the IsKronecker check.
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 1}})
//	b, _ := matrix.NewFromRows([][]float64{{5, 0, 0}, {0, 1, 0}, {0, 0, 1}})
//	t, _ := tt.FromKronecker(a, b)      // 6×6 matrix a ⊗ b
//	det, _ := kron.Determinant(t)       // 2³ · 5² = 200
//	logDet, _ := kron.LogDeterminant(t) // log 200, overflow-safe
//	inv, _ := kron.Inverse(t)           // a⁻¹ ⊗ b⁻¹, still factored
//
// Errors are sentinel values matched with errors.Is. Structural problems
// (ranks above 1, non-square factors) surface as kron.ErrStructure before any
// arithmetic; numeric failures name the offending factor via *kron.CoreError.
package ttkron
