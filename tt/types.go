// SPDX-License-Identifier: MIT

// Package tt: domain types for tensor-train values.
// This file declares Core, Shape, TensorTrain and the package sentinel errors.
//
// Errors:
//
//	ErrNoCores       - a train needs at least one core.
//	ErrNilCore       - a core pointer is nil.
//	ErrCoreDims      - a core dimension is not positive.
//	ErrCoreData      - a core's flat data does not hold r0*m*n*r1 values.
//	ErrRankMismatch  - rank sequence length or values disagree with the cores.
//	ErrBoundaryRank  - first or last tt-rank is not 1.
//	ErrShapeMismatch - shape descriptor disagrees with the cores.
//	ErrOutOfRange    - an index is outside the core / train bounds.
//	ErrTooLarge      - Full would materialize more than MaxFullElements values.
package tt

import "errors"

// Sentinel errors for tensor-train construction and access.
var (
	// ErrNoCores indicates that a train was requested with zero cores.
	ErrNoCores = errors.New("tt: at least one core is required")

	// ErrNilCore indicates a nil *Core in the core list.
	ErrNilCore = errors.New("tt: nil core")

	// ErrCoreDims indicates a non-positive core dimension.
	ErrCoreDims = errors.New("tt: core dimensions must be > 0")

	// ErrCoreData indicates that a core's data length does not match its dimensions.
	ErrCoreData = errors.New("tt: core data length does not match dimensions")

	// ErrRankMismatch indicates an inconsistent tt-rank sequence.
	ErrRankMismatch = errors.New("tt: tt-ranks do not match cores")

	// ErrBoundaryRank indicates that the first or last tt-rank differs from 1.
	ErrBoundaryRank = errors.New("tt: boundary tt-ranks must be 1")

	// ErrShapeMismatch indicates that the shape descriptor disagrees with the cores.
	ErrShapeMismatch = errors.New("tt: shape does not match cores")

	// ErrOutOfRange indicates an index outside valid bounds.
	ErrOutOfRange = errors.New("tt: index out of range")

	// ErrTooLarge indicates that a full materialization exceeds MaxFullElements.
	ErrTooLarge = errors.New("tt: full matrix too large")
)

// MaxFullElements caps the number of float64 values Full may allocate.
const MaxFullElements = 1 << 26

// Core is one 4-D tt-core of shape r0 × m × n × r1, stored row-major:
// offset(a, i, j, b) = ((a*m + i)*n + j)*r1 + b.
//
// A Core is immutable once built; every accessor returns copies.
type Core struct {
	r0, m, n, r1 int
	data         []float64
}

// Shape is the per-core shape descriptor of a train.
//
// Rows[k] (and Cols[k]) is the number of rows (columns) core k contributes to
// the represented matrix; the full matrix is (ΠRows) × (ΠCols). A nil Cols
// marks a TT vector: its cores have a single column mode.
type Shape struct {
	Rows []int
	Cols []int
}

// TensorTrain is an immutable tensor-train value: an ordered list of cores,
// the shape descriptor and the tt-rank sequence (len(cores)+1 values).
//
// When every tt-rank equals 1 a TT matrix is exactly the Kronecker product
// of its cores' [0,:,:,0] slices.
type TensorTrain struct {
	cores []*Core
	shape Shape
	ranks []int
}
