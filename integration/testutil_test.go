package integration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/integration"
)

const (
	// seedDet is the fixed seed used by Monte Carlo tests.
	seedDet = int64(20240917)

	// epsRound bounds differences that come only from floating-point
	// reduction order.
	epsRound = 1e-12
)

// square is f(x) = x².
func square(x float64) float64 { return x * x }

// indicatorUnitDisk is 1 inside the open unit disk, 0 elsewhere.
func indicatorUnitDisk(p []float64) float64 {
	if p[0]*p[0]+p[1]*p[1] < 1 {
		return 1
	}

	return 0
}

// one is the constant integrand: integrating it yields the domain measure.
func one([]float64) float64 { return 1 }

// gaussian2D is exp(-(x²+y²)), smooth on any box.
func gaussian2D(p []float64) float64 { return math.Exp(-(p[0]*p[0] + p[1]*p[1])) }

// lift turns a scalar function into an Integrand over the first coordinate.
func lift(f integration.Func1D) integration.Integrand {
	return func(p []float64) float64 { return f(p[0]) }
}

// mustBox builds a Box or fails the test.
func mustBox(t *testing.T, lower, upper []float64) *integration.Box {
	t.Helper()
	b, err := integration.NewBox(lower, upper)
	require.NoError(t, err)

	return b
}

// mustInterval builds a one-dimensional Box or fails the test.
func mustInterval(t *testing.T, a, b float64) *integration.Box {
	t.Helper()
	iv, err := integration.NewInterval(a, b)
	require.NoError(t, err)

	return iv
}

// zeroDomain reports dimension 0; no constructor in the package allows it.
type zeroDomain struct{}

func (zeroDomain) Dimension() int { return 0 }
func (zeroDomain) Transform(dst, unit []float64) {}
func (zeroDomain) Jacobian([]float64) float64 { return 1 }
