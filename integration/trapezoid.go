// SPDX-License-Identifier: MIT

package integration

// Trapezoid is the composite trapezoidal rule on N >= 2 equally spaced
// points including both endpoints: weights h·(½, 1, …, 1, ½), h = 1/(N-1).
// O(1/N²) for smooth integrands; exact for linear ones.
type Trapezoid struct {
	n int
}

var _ Integrator = (*Trapezoid)(nil)

// NewTrapezoid builds a trapezoidal integrator on n points.
//
// Errors:
//   - ErrNonPositiveSamples if n <= 0.
//   - ErrTooFewPoints if n == 1.
func NewTrapezoid(n int) (*Trapezoid, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSamples
	}
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	return &Trapezoid{n: n}, nil
}

// Samples reports N.
func (t *Trapezoid) Samples() int { return t.n }

// Integrate applies the rule on a one-dimensional domain.
func (t *Trapezoid) Integrate(f Integrand, d Domain) (float64, error) {
	return integrateGridDomain(t, f, d)
}

// Integrate1D applies the rule on [lower, upper].
func (t *Trapezoid) Integrate1D(f Func1D, lower, upper float64) (float64, error) {
	return integrateGrid1D(t, f, lower, upper)
}

func (t *Trapezoid) points() int { return t.n }

func (t *Trapezoid) node(i int) float64 { return float64(i) / float64(t.n-1) }

func (t *Trapezoid) weight(i int) float64 {
	h := 1 / float64(t.n-1)
	if i == 0 || i == t.n-1 {
		return h / 2
	}

	return h
}
