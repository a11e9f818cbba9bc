// SPDX-License-Identifier: MIT

package integration

// Simpson is the composite Simpson rule on N = 2m+1 (m >= 1) equally spaced
// points including both endpoints. Weights follow 1, 4, 2, 4, …, 2, 4, 1
// scaled by h/3 with h = 1/(N-1). Error is O(1/N⁴) for smooth integrands.
//
// The point count is validated at construction: an even N is a
// configuration error and is never rounded to the next odd value.
type Simpson struct {
	n int
}

var _ Integrator = (*Simpson)(nil)

// NewSimpson builds a Simpson integrator on n points.
//
// Errors:
//   - ErrNonPositiveSamples if n <= 0.
//   - ErrSimpsonEvenPoints if n is even.
//   - ErrTooFewPoints if n == 1.
func NewSimpson(n int) (*Simpson, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSamples
	}
	if n%2 == 0 {
		return nil, ErrSimpsonEvenPoints
	}
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	return &Simpson{n: n}, nil
}

// Samples reports N.
func (s *Simpson) Samples() int { return s.n }

// Integrate applies the rule on a one-dimensional domain.
func (s *Simpson) Integrate(f Integrand, d Domain) (float64, error) {
	return integrateGridDomain(s, f, d)
}

// Integrate1D applies the rule on [lower, upper].
func (s *Simpson) Integrate1D(f Func1D, lower, upper float64) (float64, error) {
	return integrateGrid1D(s, f, lower, upper)
}

func (s *Simpson) points() int { return s.n }

func (s *Simpson) node(i int) float64 { return float64(i) / float64(s.n-1) }

func (s *Simpson) weight(i int) float64 {
	h3 := 1 / (3 * float64(s.n-1))
	switch {
	case i == 0 || i == s.n-1:
		return h3
	case i%2 == 1:
		return 4 * h3
	default:
		return 2 * h3
	}
}
