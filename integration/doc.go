// SPDX-License-Identifier: MIT

// Package integration estimates definite integrals with interchangeable
// quadrature and sampling strategies over arbitrary-dimensional domains.
//
// 🚀 How it works
//
//	Every Domain is the image of the unit cube [0,1]ⁿ under a transform g
//	with Jacobian determinant J. An Integrator produces abscissas u_i in
//	[0,1]ⁿ, maps them through g, and reduces the weighted values
//	f(g(u_i))·|J(u_i)| with Kahan summation:
//
//	  ∫_A f(z) dz = ∫_[0,1]ⁿ f(g(u))·|J(u)| du
//
// ✨ Strategies (all implement Integrator):
//
//	Riemann         — (i+½)/N midpoint (or left/right) nodes   O(1/N²)
//	Trapezoid       — N grid points, ½-weighted ends           O(1/N²)
//	Simpson         — N odd grid points, 1,4,2,…,4,1 weights   O(1/N⁴)
//	MonteCarlo      — seeded i.i.d. uniforms                    O(1/√N)
//	QuasiMonteCarlo — Halton / Van der Corput points            O(log(N)ᵈ/N)
//
//	Grid rules are one-dimensional: they accept Integrate1D and any Domain
//	with Dimension()==1. MonteCarlo and QuasiMonteCarlo accept any dimension.
//
// ✨ Domains: Box / Interval, Disk, Ball, HalfLine, Affine (gonum matrix).
//
// ⚙️ Usage:
//
//	disk, _ := integration.NewDisk(0, 0, 1)
//	qmc, err := integration.NewQuasiMonteCarlo(1_000_000, integration.WithWorkers(4))
//	if err != nil {
//	  // ErrNonPositiveSamples, ErrInvalidWorkers, lowdisc errors
//	}
//	area, err := qmc.Integrate(func([]float64) float64 { return 1 }, disk)
//
// Factories (Factory, SeededFactory) bind configuration to a strategy so
// callers can swap strategies by passing (samples) or (seed, samples) only.
//
// Errors:
//   - Configuration errors are returned by constructors (ErrSimpsonEvenPoints,
//     ErrNonPositiveSamples, ErrInvalidWorkers, …), never by Integrate.
//   - NaN/Inf produced by an integrand propagate unmodified.
//   - A Jacobian inconsistent with its transform is a caller bug the package
//     cannot detect.
//
// Concurrency:
//
//	WithWorkers(k) partitions the sample range into k contiguous blocks run
//	on separate goroutines (golang.org/x/sync/errgroup). QMC workers index
//	the stateless Halton sequence directly; MC workers each own a generator
//	derived from the master seed. Partial Kahan sums are merged in block
//	order; merging k partials adds O(√k·ε)-scale error relative to a single
//	accumulator, which is accepted rather than eliminated. There is no
//	cancellation: choose smaller N for shorter runs.
package integration
