// SPDX-License-Identifier: MIT

package integration

// Integrand is a function ℝⁿ → ℝ evaluated at a point of the actual domain.
// It must be pure: no side effects, no retained reference to point (the
// slice is reused between calls). With WithWorkers(k > 1) it is called from
// k goroutines at once.
type Integrand func(point []float64) float64

// Func1D is the scalar integrand used by the one-dimensional specialisations.
type Func1D func(x float64) float64

// Domain describes an integration region as the image of [0,1]ⁿ under a
// transform g, so that
//
//	∫_A f(z) dz = ∫_[0,1]ⁿ f(g(u)) · |det ∂g/∂u(u)| du.
//
// Transform writes g(unit) into dst (both of length Dimension()); Jacobian
// returns det ∂g/∂u at unit. The two must be consistent. This package cannot
// verify that analytically and does not try; it is the implementer's
// responsibility, checked numerically by tests.
type Domain interface {
	Dimension() int
	Transform(dst, unit []float64)
	Jacobian(unit []float64) float64
}

// Integrator is the common face of every quadrature and sampling strategy.
// Instances are immutable configuration; both methods are safe for
// concurrent use and hold no state between calls.
//
//   - Integrate estimates ∫ f over d via the unit-cube transform.
//   - Integrate1D estimates ∫_lower^upper f(x) dx directly. lower > upper
//     yields the oriented (negated) integral.
type Integrator interface {
	Integrate(f Integrand, d Domain) (float64, error)
	Integrate1D(f Func1D, lower, upper float64) (float64, error)
}

// EvaluationPoint selects where a Riemann sum samples each sub-interval.
type EvaluationPoint int

const (
	// Midpoint samples (2i+1)/(2N): O(1/N²) for smooth integrands.
	Midpoint EvaluationPoint = iota

	// Left samples i/N: O(1/N).
	Left

	// Right samples (i+1)/N: O(1/N).
	Right
)

// String implements fmt.Stringer.
func (p EvaluationPoint) String() string {
	switch p {
	case Midpoint:
		return "midpoint"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// offset returns the position of the sample inside a unit sub-interval.
func (p EvaluationPoint) offset() float64 {
	switch p {
	case Left:
		return 0
	case Right:
		return 1
	default:
		return 0.5
	}
}

// validateIntegrate checks the arguments shared by every Integrate method.
func validateIntegrate(f Integrand, d Domain) (int, error) {
	if f == nil {
		return 0, ErrNilIntegrand
	}
	if d == nil {
		return 0, ErrNilDomain
	}
	dim := d.Dimension()
	if dim < 1 {
		return 0, ErrUnsupportedDimension
	}

	return dim, nil
}
