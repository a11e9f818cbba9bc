// SPDX-License-Identifier: MIT

package integration

import (
	"math"

	"github.com/katalvlaran/quadra/summation"
)

// MonteCarlo estimates integrals from N i.i.d. uniform draws of a seeded
// generator; every sample carries weight 1/N. Error is O(1/√N) with a
// seed-dependent variance.
//
// Determinism: identical (seed, N, workers) reproduce bit-identical results.
// With WithWorkers(k > 1) worker w draws from its own generator seeded by a
// SplitMix64 stream of the master seed, so no generator is shared.
type MonteCarlo struct {
	seed    int64
	n       int
	workers int
}

var _ Integrator = (*MonteCarlo)(nil)

// NewMonteCarlo builds a Monte Carlo integrator. Reads WithWorkers.
// seed==0 selects a fixed default seed.
//
// Errors:
//   - ErrNonPositiveSamples if n <= 0.
//   - ErrInvalidWorkers if the worker count is < 1.
func NewMonteCarlo(seed int64, n int, opts ...Option) (*MonteCarlo, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSamples
	}
	o := gatherOptions(opts...)
	if o.workers < 1 {
		return nil, ErrInvalidWorkers
	}

	return &MonteCarlo{seed: seed, n: n, workers: o.workers}, nil
}

// Seed reports the configured master seed.
func (m *MonteCarlo) Seed() int64 { return m.seed }

// Samples reports N.
func (m *MonteCarlo) Samples() int { return m.n }

// Workers reports the number of seed-partitioned workers.
func (m *MonteCarlo) Workers() int { return m.workers }

// Integrate estimates ∫_d f as (1/N)·Σ f(g(u_i))·|J(u_i)| with u_i uniform in
// [0,1)^d, accumulated with Kahan summation.
//
// Errors:
//   - ErrNilIntegrand, ErrNilDomain, ErrUnsupportedDimension.
func (m *MonteCarlo) Integrate(f Integrand, d Domain) (float64, error) {
	dim, err := validateIntegrate(f, d)
	if err != nil {
		return 0, err
	}

	blocks := SplitRange(0, m.n, m.workers)
	total := reduceBlocks(blocks, func(w int, b Block) summation.Kahan {
		var (
			acc  summation.Kahan
			rng  = workerRNG(m.seed, w, len(blocks))
			unit = make([]float64, dim)
			z    = make([]float64, dim)
			i, k int
		)
		for i = 0; i < b.Count; i++ {
			for k = 0; k < dim; k++ {
				unit[k] = rng.Float64()
			}
			d.Transform(z, unit)
			acc.Add(f(z) * math.Abs(d.Jacobian(unit)))
		}

		return acc
	})

	return total / float64(m.n), nil
}

// Integrate1D estimates ∫_lower^upper f as (upper-lower)/N·Σ f(lower + (upper-lower)·u_i).
// It consumes the same draws as Integrate on NewInterval(lower, upper).
func (m *MonteCarlo) Integrate1D(f Func1D, lower, upper float64) (float64, error) {
	if f == nil {
		return 0, ErrNilIntegrand
	}

	width := upper - lower
	blocks := SplitRange(0, m.n, m.workers)
	total := reduceBlocks(blocks, func(w int, b Block) summation.Kahan {
		var acc summation.Kahan
		rng := workerRNG(m.seed, w, len(blocks))
		for i := 0; i < b.Count; i++ {
			acc.Add(f(lower + width*rng.Float64()))
		}

		return acc
	})

	return width * total / float64(m.n), nil
}
