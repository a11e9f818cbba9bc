// SPDX-License-Identifier: MIT

package integration

import (
	"math"

	"github.com/katalvlaran/quadra/lowdisc"
	"github.com/katalvlaran/quadra/summation"
)

// Operation tags for wrapped errors.
const (
	opNewQuasiMonteCarlo = "NewQuasiMonteCarlo"
	opQMCIntegrate       = "QuasiMonteCarlo.Integrate"
	opQMCIntegrate1D     = "QuasiMonteCarlo.Integrate1D"
)

// QuasiMonteCarlo estimates integrals from the Halton points with indices
// [start, start+N); every sample carries weight 1/N. Error is
// O(log(N)^d / N) for integrands of bounded variation.
//
// There is no seed, only an index range. Splitting that range into disjoint
// blocks (WithWorkers, or several integrators with WithStartIndex)
// reproduces the single-range estimate up to rounding.
type QuasiMonteCarlo struct {
	n       int
	start   uint64
	workers int
	halton  *lowdisc.Halton // nil ⇒ first d primes per domain
}

var _ Integrator = (*QuasiMonteCarlo)(nil)

// NewQuasiMonteCarlo builds a QMC integrator.
// Reads WithWorkers, WithStartIndex and WithBases.
//
// Errors:
//   - ErrNonPositiveSamples if n <= 0.
//   - ErrInvalidWorkers if the worker count is < 1.
//   - lowdisc.ErrNoBases / ErrInvalidBase / ErrBasesNotCoprime (wrapped)
//     for an invalid WithBases list.
func NewQuasiMonteCarlo(n int, opts ...Option) (*QuasiMonteCarlo, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSamples
	}
	o := gatherOptions(opts...)
	if o.workers < 1 {
		return nil, ErrInvalidWorkers
	}

	q := &QuasiMonteCarlo{n: n, start: o.start, workers: o.workers}
	if o.bases != nil {
		h, err := lowdisc.NewHalton(o.bases...)
		if err != nil {
			return nil, integrationErrorf(opNewQuasiMonteCarlo, err)
		}
		q.halton = h
	}

	return q, nil
}

// Samples reports N.
func (q *QuasiMonteCarlo) Samples() int { return q.n }

// StartIndex reports the first sequence index consumed.
func (q *QuasiMonteCarlo) StartIndex() uint64 { return q.start }

// Workers reports the number of index-partitioned workers.
func (q *QuasiMonteCarlo) Workers() int { return q.workers }

// sequence returns the Halton sequence for a dim-dimensional domain.
func (q *QuasiMonteCarlo) sequence(dim int) (*lowdisc.Halton, error) {
	if q.halton != nil {
		if q.halton.Dimension() != dim {
			return nil, ErrDimensionMismatch
		}

		return q.halton, nil
	}

	return lowdisc.NewHaltonDim(dim)
}

// Integrate estimates ∫_d f as (1/N)·Σ f(g(x_i))·|J(x_i)| over Halton points
// x_i, accumulated with Kahan summation per worker.
//
// Errors:
//   - ErrNilIntegrand, ErrNilDomain, ErrUnsupportedDimension.
//   - ErrDimensionMismatch (wrapped) if WithBases does not match d.
func (q *QuasiMonteCarlo) Integrate(f Integrand, d Domain) (float64, error) {
	dim, err := validateIntegrate(f, d)
	if err != nil {
		return 0, err
	}
	seq, err := q.sequence(dim)
	if err != nil {
		return 0, integrationErrorf(opQMCIntegrate, err)
	}

	total := reduceBlocks(SplitRange(q.start, q.n, q.workers), func(_ int, b Block) summation.Kahan {
		var (
			acc  summation.Kahan
			unit = make([]float64, dim)
			z    = make([]float64, dim)
			end  = b.Start + uint64(b.Count)
		)
		for i := b.Start; i < end; i++ {
			seq.Fill(unit, i)
			d.Transform(z, unit)
			acc.Add(f(z) * math.Abs(d.Jacobian(unit)))
		}

		return acc
	})

	return total / float64(q.n), nil
}

// Integrate1D estimates ∫_lower^upper f over the Van der Corput points of
// the first (or only configured) base; base 2 by default, matching the first
// coordinate of Integrate on NewInterval(lower, upper).
//
// Errors:
//   - ErrNilIntegrand.
//   - ErrDimensionMismatch (wrapped) if WithBases configured more than one base.
func (q *QuasiMonteCarlo) Integrate1D(f Func1D, lower, upper float64) (float64, error) {
	if f == nil {
		return 0, ErrNilIntegrand
	}
	seq, err := q.sequence(1)
	if err != nil {
		return 0, integrationErrorf(opQMCIntegrate1D, err)
	}

	width := upper - lower
	total := reduceBlocks(SplitRange(q.start, q.n, q.workers), func(_ int, b Block) summation.Kahan {
		var (
			acc  summation.Kahan
			unit = make([]float64, 1)
			end  = b.Start + uint64(b.Count)
		)
		for i := b.Start; i < end; i++ {
			seq.Fill(unit, i)
			acc.Add(f(lower + width*unit[0]))
		}

		return acc
	})

	return width * total / float64(q.n), nil
}
