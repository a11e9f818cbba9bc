// SPDX-License-Identifier: MIT

// Package integration: functional configuration for integrators.
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based seeds.
//   - Defaults live in the constants below (single source of truth).
//   - Option setters never fail; constructors validate the gathered values
//     and return sentinel errors (ErrInvalidWorkers, lowdisc.ErrInvalidBase, …).
//
// Which variants read which options:
//   - WithWorkers:         MonteCarlo, QuasiMonteCarlo
//   - WithStartIndex:      QuasiMonteCarlo
//   - WithBases:           QuasiMonteCarlo
//   - WithEvaluationPoint: Riemann
//
// Options a variant does not read are ignored.

package integration

// Defaults.
const (
	// DefaultWorkers runs every integration on the calling goroutine.
	DefaultWorkers = 1

	// DefaultStartIndex is the first low-discrepancy index consumed by QMC.
	DefaultStartIndex uint64 = 0

	// DefaultEvaluationPoint is the Riemann sampling position.
	DefaultEvaluationPoint = Midpoint
)

// Option mutates the internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	workers int
	start   uint64
	bases   []uint32 // nil ⇒ first d primes, chosen per domain
	point   EvaluationPoint
}

// WithWorkers splits the sample range across n goroutines.
//
// MonteCarlo gives every worker its own generator derived from the master
// seed; QuasiMonteCarlo gives every worker a contiguous index block.
// Results depend on n only through floating-point reduction order (QMC) or
// through the seed streams (MC), and are deterministic for fixed n.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithStartIndex makes QuasiMonteCarlo consume indices [i, i+N).
func WithStartIndex(i uint64) Option {
	return func(o *options) { o.start = i }
}

// WithBases fixes the Halton bases used by QuasiMonteCarlo. The number of
// bases must equal the dimension of every domain integrated; a single base
// also drives Integrate1D.
func WithBases(bases ...uint32) Option {
	cp := make([]uint32, len(bases)) // non-nil even when empty: ErrNoBases, not defaults
	copy(cp, bases)

	return func(o *options) { o.bases = cp }
}

// WithEvaluationPoint sets where Riemann samples each sub-interval.
func WithEvaluationPoint(p EvaluationPoint) Option {
	return func(o *options) { o.point = p }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		workers: DefaultWorkers,
		start:   DefaultStartIndex,
		point:   DefaultEvaluationPoint,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
