package integration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/integration"
)

// TestFactories_Interchangeable builds every strategy through its factory
// and integrates sin over [0,π] (exact value 2).
func TestFactories_Interchangeable(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (integration.Integrator, error)
		tol     float64
	}{
		{"riemann", func() (integration.Integrator, error) { return integration.RiemannFactory().Integrator(1000) }, 1e-5},
		{"trapezoid", func() (integration.Integrator, error) { return integration.TrapezoidFactory().Integrator(1001) }, 1e-5},
		{"simpson", func() (integration.Integrator, error) { return integration.SimpsonFactory().Integrator(101) }, 1e-7},
		{"quasi", func() (integration.Integrator, error) { return integration.QuasiMonteCarloFactory().Integrator(8192) }, 1e-3},
		{"monte-carlo", func() (integration.Integrator, error) {
			return integration.MonteCarloFactory(integration.WithWorkers(2)).Integrator(seedDet, 100_000)
		}, 3e-2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := tc.build()
			require.NoError(t, err)
			got, err := in.Integrate1D(math.Sin, 0, math.Pi)
			require.NoError(t, err)
			assert.InDelta(t, 2.0, got, tc.tol)
		})
	}
}

// TestMonteCarloFactory_MatchesConstructor checks the factory only binds
// configuration.
func TestMonteCarloFactory_MatchesConstructor(t *testing.T) {
	f := integration.MonteCarloFactory(integration.WithWorkers(3))
	viaFactory, err := f.Integrator(seedDet, 20_000)
	require.NoError(t, err)
	direct, err := integration.NewMonteCarlo(seedDet, 20_000, integration.WithWorkers(3))
	require.NoError(t, err)

	box := mustBox(t, []float64{0, 0}, []float64{1, 1})
	a, err := viaFactory.Integrate(gaussian2D, box)
	require.NoError(t, err)
	b, err := direct.Integrate(gaussian2D, box)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

// TestFactories_PropagateConfigurationErrors checks constructor errors
// surface from the factory call.
func TestFactories_PropagateConfigurationErrors(t *testing.T) {
	_, err := integration.SimpsonFactory().Integrator(100)
	assert.ErrorIs(t, err, integration.ErrSimpsonEvenPoints)

	_, err = integration.TrapezoidFactory().Integrator(1)
	assert.ErrorIs(t, err, integration.ErrTooFewPoints)

	_, err = integration.RiemannFactory().Integrator(0)
	assert.ErrorIs(t, err, integration.ErrNonPositiveSamples)

	_, err = integration.QuasiMonteCarloFactory(integration.WithWorkers(0)).Integrator(10)
	assert.ErrorIs(t, err, integration.ErrInvalidWorkers)

	_, err = integration.MonteCarloFactory().Integrator(seedDet, -5)
	assert.ErrorIs(t, err, integration.ErrNonPositiveSamples)
}

// TestFactoryFunc_Adapters checks the function adapters.
func TestFactoryFunc_Adapters(t *testing.T) {
	var calls int
	ff := integration.FactoryFunc(func(samples int) (integration.Integrator, error) {
		calls++

		return integration.NewRiemann(samples)
	})
	in, err := ff.Integrator(4)
	require.NoError(t, err)
	assert.IsType(t, &integration.Riemann{}, in)

	sf := integration.SeededFactoryFunc(func(seed int64, samples int) (integration.Integrator, error) {
		calls++

		return integration.NewMonteCarlo(seed, samples)
	})
	in, err = sf.Integrator(7, 4)
	require.NoError(t, err)
	mc, ok := in.(*integration.MonteCarlo)
	require.True(t, ok)
	assert.Equal(t, int64(7), mc.Seed())
	assert.Equal(t, 2, calls)
}
