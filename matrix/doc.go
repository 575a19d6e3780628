// Package matrix offers the dense building blocks used by the Kronecker
// operations in ttkron.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Kernels: Mul, Transpose, Kron, KronAll, AllClose.
//   - Factorizations on small square matrices: Det, LogDet, Inverse and a
//     lower Cholesky factor, computed with gonum's pivoted LU / Cholesky.
//   - Validators shared by all kernels (nil, square, same-shape, symmetric).
//
// Every kernel returns a freshly allocated *Dense and never mutates its
// operands. Failures are reported with package sentinels (ErrSingular,
// ErrNotPositiveDefinite, ...) wrapped with the operation name.
package matrix
