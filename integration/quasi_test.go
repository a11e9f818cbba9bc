package integration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/integration"
	"github.com/katalvlaran/quadra/lowdisc"
)

// TestQuasiMonteCarlo_UnitDiskArea integrates the unit-disk indicator over
// [-1,1]² (Jacobian 4) with Halton bases (2,3) and 10⁶ points.
func TestQuasiMonteCarlo_UnitDiskArea(t *testing.T) {
	if testing.Short() {
		t.Skip("10⁶ samples")
	}
	box := mustBox(t, []float64{-1, -1}, []float64{1, 1})
	assert.Equal(t, 4.0, box.Jacobian(nil))

	q, err := integration.NewQuasiMonteCarlo(1_000_000, integration.WithBases(2, 3))
	require.NoError(t, err)
	got, err := q.Integrate(indicatorUnitDisk, box)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 1e-2)
}

// TestQuasiMonteCarlo_PartitionEquivalence splits N indices into k blocks,
// integrates each block with its own start index and recombines the
// estimates weighted by block size.
func TestQuasiMonteCarlo_PartitionEquivalence(t *testing.T) {
	const (
		n = 100_000
		k = 7
	)
	box := mustBox(t, []float64{0, 0}, []float64{1, 1})

	whole, err := integration.NewQuasiMonteCarlo(n)
	require.NoError(t, err)
	want, err := whole.Integrate(gaussian2D, box)
	require.NoError(t, err)

	var combined float64
	blocks := integration.SplitRange(0, n, k)
	require.Len(t, blocks, k)
	for _, b := range blocks {
		part, err := integration.NewQuasiMonteCarlo(b.Count, integration.WithStartIndex(b.Start))
		require.NoError(t, err)
		est, err := part.Integrate(gaussian2D, box)
		require.NoError(t, err)
		combined += est * float64(b.Count) / n
	}
	assert.InDelta(t, want, combined, epsRound)
}

// TestQuasiMonteCarlo_WorkersMatchSequential checks index-partitioned
// workers against a single goroutine.
func TestQuasiMonteCarlo_WorkersMatchSequential(t *testing.T) {
	box := mustBox(t, []float64{-1, 0, 0}, []float64{1, 1, 2})
	f := func(p []float64) float64 { return math.Cos(p[0]) * p[1] * p[2] }

	seq, err := integration.NewQuasiMonteCarlo(30_001)
	require.NoError(t, err)
	par, err := integration.NewQuasiMonteCarlo(30_001, integration.WithWorkers(5))
	require.NoError(t, err)

	a, err := seq.Integrate(f, box)
	require.NoError(t, err)
	b, err := par.Integrate(f, box)
	require.NoError(t, err)
	assert.InDelta(t, a, b, epsRound)

	// ∫cos x dx · ∫y dy · ∫z dz = 2 sin 1 · ½ · 2
	assert.InDelta(t, 2*math.Sin(1), a, 5e-3)
}

// TestQuasiMonteCarlo_Deterministic checks that QMC has no hidden state.
func TestQuasiMonteCarlo_Deterministic(t *testing.T) {
	q, err := integration.NewQuasiMonteCarlo(5000, integration.WithStartIndex(17))
	require.NoError(t, err)
	assert.Equal(t, uint64(17), q.StartIndex())

	a, err := q.Integrate1D(math.Exp, 0, 1)
	require.NoError(t, err)
	b, err := q.Integrate1D(math.Exp, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.InDelta(t, math.E-1, a, 5e-3)
}

// TestQuasiMonteCarlo_1DMatchesDomainPath checks Integrate1D against
// Integrate on the matching Interval.
func TestQuasiMonteCarlo_1DMatchesDomainPath(t *testing.T) {
	q, err := integration.NewQuasiMonteCarlo(4096, integration.WithWorkers(2))
	require.NoError(t, err)

	direct, err := q.Integrate1D(square, 0, 1)
	require.NoError(t, err)
	viaDomain, err := q.Integrate(lift(square), mustInterval(t, 0, 1))
	require.NoError(t, err)

	assert.InDelta(t, direct, viaDomain, epsRound)
	assert.InDelta(t, 1.0/3, direct, 1e-3)
}

// TestQuasiMonteCarlo_Base3In1D checks a single configured base drives
// Integrate1D.
func TestQuasiMonteCarlo_Base3In1D(t *testing.T) {
	q, err := integration.NewQuasiMonteCarlo(1, integration.WithBases(3))
	require.NoError(t, err)

	// One sample at VanDerCorput(0, 3) = 1/3 over [0,1] of f(x)=x.
	got, err := q.Integrate1D(func(x float64) float64 { return x }, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, got, 1e-15)
}

// TestQuasiMonteCarlo_BaseErrors covers WithBases validation.
func TestQuasiMonteCarlo_BaseErrors(t *testing.T) {
	_, err := integration.NewQuasiMonteCarlo(10, integration.WithBases(2, 4))
	assert.ErrorIs(t, err, lowdisc.ErrBasesNotCoprime)

	_, err = integration.NewQuasiMonteCarlo(10, integration.WithBases(1))
	assert.ErrorIs(t, err, lowdisc.ErrInvalidBase)

	_, err = integration.NewQuasiMonteCarlo(10, integration.WithBases())
	assert.ErrorIs(t, err, lowdisc.ErrNoBases)

	q, err := integration.NewQuasiMonteCarlo(10, integration.WithBases(2, 3))
	require.NoError(t, err)
	_, err = q.Integrate(one, mustInterval(t, 0, 1))
	assert.ErrorIs(t, err, integration.ErrDimensionMismatch)
	_, err = q.Integrate1D(square, 0, 1)
	assert.ErrorIs(t, err, integration.ErrDimensionMismatch)
}

// TestQuasiMonteCarlo_Errors covers construction and argument errors.
func TestQuasiMonteCarlo_Errors(t *testing.T) {
	_, err := integration.NewQuasiMonteCarlo(0)
	assert.ErrorIs(t, err, integration.ErrNonPositiveSamples)
	_, err = integration.NewQuasiMonteCarlo(10, integration.WithWorkers(-1))
	assert.ErrorIs(t, err, integration.ErrInvalidWorkers)

	q, err := integration.NewQuasiMonteCarlo(10)
	require.NoError(t, err)
	assert.Equal(t, 10, q.Samples())
	assert.Equal(t, 1, q.Workers())
	_, err = q.Integrate(nil, mustInterval(t, 0, 1))
	assert.ErrorIs(t, err, integration.ErrNilIntegrand)
	_, err = q.Integrate(one, nil)
	assert.ErrorIs(t, err, integration.ErrNilDomain)
	_, err = q.Integrate1D(nil, 0, 1)
	assert.ErrorIs(t, err, integration.ErrNilIntegrand)
}

// TestSplitRange covers block sizes, clamping and degenerate inputs.
func TestSplitRange(t *testing.T) {
	assert.Equal(t, []integration.Block{{Start: 5, Count: 4}, {Start: 9, Count: 3}, {Start: 12, Count: 3}},
		integration.SplitRange(5, 10, 3))
	assert.Len(t, integration.SplitRange(0, 3, 8), 3, "parts clamp to count")
	assert.Nil(t, integration.SplitRange(0, 0, 4))
	assert.Nil(t, integration.SplitRange(0, 4, 0))

	var total int
	next := uint64(100)
	for _, b := range integration.SplitRange(100, 1001, 7) {
		assert.Equal(t, next, b.Start, "blocks must be contiguous")
		next += uint64(b.Count)
		total += b.Count
	}
	assert.Equal(t, 1001, total)
}
