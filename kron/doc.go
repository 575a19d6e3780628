// Package kron computes closed-form determinant, log-determinant, inverse and
// Cholesky factor of a square matrix stored as a Kronecker product
//
//	A = A₁ ⊗ A₂ ⊗ … ⊗ A_k
//
// of small square factors, i.e. a tt.TensorTrain matrix whose tt-ranks are
// all 1. Every operation works factor by factor and never materializes A:
//
//	det A      = Π det(A_i)^(N/n_i)          N = Π n_i
//	log det A  = Σ log det(A_i) · (N/n_i)
//	A⁻¹        = A₁⁻¹ ⊗ … ⊗ A_k⁻¹
//	chol(A)    = chol(A₁) ⊗ … ⊗ chol(A_k)
//
// Preconditions are checked once, up front, by the same gate for all four
// operations: the input must satisfy IsKronecker and every core must be
// square. A violation returns an error matching ErrStructure before any
// factor is decomposed. Numeric failures of a single factor come back as
// *CoreError, which names the factor and unwraps to the matrix sentinel
// (matrix.ErrSingular, matrix.ErrNotPositiveDefinite, ...).
//
// Inputs are read-only. Inverse and Cholesky return a new train with the
// input's shape and all tt-ranks 1.
//
// Determinant multiplies in the direct domain and may overflow for large N;
// LogDeterminant is the robust alternative and rejects factors whose
// determinant is not strictly positive with ErrNonPositiveDeterminant.
//
// Factors are independent, so WithParallel(n) may decompose up to n of them
// concurrently. Results and reported errors do not depend on the worker count.
package kron
