// SPDX-License-Identifier: MIT

package integration

import (
	"math"

	"github.com/katalvlaran/quadra/summation"
)

// gridRule is a fixed one-dimensional quadrature on [0,1]: nodes u_i and
// weights w_i with Σ w_i = 1. Scaling to [a,b] multiplies by (b-a).
type gridRule interface {
	points() int
	node(i int) float64
	weight(i int) float64
}

// integrateGrid1D evaluates (b-a)·Σ w_i·f(a + (b-a)·u_i).
//
// Complexity: O(N) evaluations, O(1) space.
func integrateGrid1D(r gridRule, f Func1D, lower, upper float64) (float64, error) {
	if f == nil {
		return 0, ErrNilIntegrand
	}

	var (
		acc   summation.Kahan
		width = upper - lower
		n     = r.points()
	)
	for i := 0; i < n; i++ {
		acc.Add(r.weight(i) * f(lower+width*r.node(i)))
	}

	return width * acc.Total(), nil
}

// integrateGridDomain evaluates Σ w_i·f(g(u_i))·|J(u_i)| on a
// one-dimensional domain. On an Interval it agrees with integrateGrid1D up
// to rounding.
func integrateGridDomain(r gridRule, f Integrand, d Domain) (float64, error) {
	dim, err := validateIntegrate(f, d)
	if err != nil {
		return 0, err
	}
	if dim != 1 {
		return 0, ErrUnsupportedDimension
	}

	var (
		acc  summation.Kahan
		unit = make([]float64, 1)
		z    = make([]float64, 1)
		n    = r.points()
	)
	for i := 0; i < n; i++ {
		unit[0] = r.node(i)
		d.Transform(z, unit)
		acc.Add(r.weight(i) * f(z) * math.Abs(d.Jacobian(unit)))
	}

	return acc.Total(), nil
}
