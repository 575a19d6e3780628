// SPDX-License-Identifier: MIT
package kron

import "math"

// Defaults.
const (
	// DefaultWorkers processes factors one after another on the caller's goroutine.
	DefaultWorkers = 1

	// DefaultSymmetryTolerance is the relative tolerance Cholesky uses when
	// checking that each factor is symmetric.
	DefaultSymmetryTolerance = 1e-9
)

const (
	panicWorkersInvalid   = "kron: WithParallel: workers must be ≥ 1"
	panicToleranceInvalid = "kron: WithSymmetryTolerance: eps must be finite, non-negative"
)

// Option configures a single call. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*config)

type config struct {
	workers int     // ≥ 1; DefaultWorkers
	symTol  float64 // ≥ 0; DefaultSymmetryTolerance
}

// WithParallel decomposes up to workers factors concurrently.
// Results and reported errors are identical to the sequential run.
//
// Panics if workers < 1.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = workers }
}

// WithSymmetryTolerance sets the tolerance for the per-factor symmetry check
// in Cholesky.
//
// Panics if eps is NaN, ±Inf or negative.
func WithSymmetryTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(c *config) { c.symTol = eps }
}

func gatherOptions(opts ...Option) config {
	c := config{
		workers: DefaultWorkers,
		symTol:  DefaultSymmetryTolerance,
	}
	for _, set := range opts {
		set(&c) // last writer wins
	}

	return c
}
