// SPDX-License-Identifier: MIT

package integration

// Riemann is the composite Riemann sum with N equal sub-intervals, sampled
// at the Left, Right or Midpoint (default) of each. The midpoint rule is
// O(1/N²) for smooth integrands; left/right are O(1/N).
type Riemann struct {
	n      int
	point  EvaluationPoint
	offset float64
}

var _ Integrator = (*Riemann)(nil)

// NewRiemann builds a Riemann integrator over n sub-intervals.
// Reads WithEvaluationPoint.
//
// Errors:
//   - ErrNonPositiveSamples if n <= 0.
//   - ErrInvalidEvaluationPoint for an unknown evaluation point.
func NewRiemann(n int, opts ...Option) (*Riemann, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSamples
	}
	o := gatherOptions(opts...)
	switch o.point {
	case Left, Right, Midpoint:
	default:
		return nil, ErrInvalidEvaluationPoint
	}

	return &Riemann{n: n, point: o.point, offset: o.point.offset()}, nil
}

// Samples reports N.
func (r *Riemann) Samples() int { return r.n }

// EvaluationPoint reports the sampling position.
func (r *Riemann) EvaluationPoint() EvaluationPoint { return r.point }

// Integrate applies the rule on a one-dimensional domain.
//
// Errors:
//   - ErrNilIntegrand, ErrNilDomain.
//   - ErrUnsupportedDimension if d.Dimension() != 1.
func (r *Riemann) Integrate(f Integrand, d Domain) (float64, error) {
	return integrateGridDomain(r, f, d)
}

// Integrate1D applies the rule on [lower, upper].
func (r *Riemann) Integrate1D(f Func1D, lower, upper float64) (float64, error) {
	return integrateGrid1D(r, f, lower, upper)
}

func (r *Riemann) points() int { return r.n }

// node is (i + offset)/N, e.g. (2i+1)/(2N) for the midpoint rule.
func (r *Riemann) node(i int) float64 { return (float64(i) + r.offset) / float64(r.n) }

func (r *Riemann) weight(int) float64 { return 1 / float64(r.n) }
