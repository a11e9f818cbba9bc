// SPDX-License-Identifier: MIT

package lowdisc

// Halton is the d-dimensional Halton sequence: coordinate k of point i is
// VanDerCorput(i, bases[k]). A *Halton is immutable after construction and
// safe for concurrent use.
type Halton struct {
	bases []uint64
}

var _ Sequence = (*Halton)(nil)

// NewHalton builds a Halton sequence with one base per dimension.
//
// Implementation:
//   - Stage 1: reject an empty base list.
//   - Stage 2: reject any base < 2.
//   - Stage 3: reject any pair of bases sharing a factor (O(d²) gcd checks).
//
// Errors:
//   - ErrNoBases, ErrInvalidBase, ErrBasesNotCoprime.
func NewHalton(bases ...uint32) (*Halton, error) {
	if len(bases) == 0 {
		return nil, ErrNoBases
	}

	var i, j int
	for i = range bases {
		if bases[i] < 2 {
			return nil, ErrInvalidBase
		}
	}
	for i = 0; i < len(bases); i++ {
		for j = i + 1; j < len(bases); j++ {
			if gcd(bases[i], bases[j]) != 1 {
				return nil, ErrBasesNotCoprime
			}
		}
	}

	h := &Halton{bases: make([]uint64, len(bases))}
	for i = range bases {
		h.bases[i] = uint64(bases[i])
	}

	return h, nil
}

// NewHaltonDim builds a d-dimensional Halton sequence over the first d primes.
//
// Errors:
//   - ErrInvalidDimension if d < 1.
func NewHaltonDim(d int) (*Halton, error) {
	if d < 1 {
		return nil, ErrInvalidDimension
	}

	return NewHalton(FirstPrimes(d)...)
}

// Dimension reports the number of coordinates per point.
func (h *Halton) Dimension() int { return len(h.bases) }

// Bases returns a copy of the per-axis bases.
func (h *Halton) Bases() []uint32 {
	out := make([]uint32, len(h.bases))
	for k, b := range h.bases {
		out[k] = uint32(b)
	}

	return out
}

// SamplePoint returns the index-th point in a freshly allocated slice.
func (h *Halton) SamplePoint(index uint64) []float64 {
	p := make([]float64, len(h.bases))
	h.Fill(p, index)

	return p
}

// Fill writes the index-th point into dst[:Dimension()].
//
// Complexity: O(Σ_k log_{b_k}(index)).
func (h *Halton) Fill(dst []float64, index uint64) {
	for k, b := range h.bases {
		dst[k] = radicalInverse(index, b)
	}
}
