// SPDX-License-Identifier: MIT

package integration

// SeededFactory builds randomized integrators from (seed, sample count).
type SeededFactory interface {
	Integrator(seed int64, samples int) (Integrator, error)
}

// Factory builds deterministic integrators from a sample count.
type Factory interface {
	Integrator(samples int) (Integrator, error)
}

// SeededFactoryFunc adapts a function to SeededFactory.
type SeededFactoryFunc func(seed int64, samples int) (Integrator, error)

// Integrator calls fn(seed, samples).
func (fn SeededFactoryFunc) Integrator(seed int64, samples int) (Integrator, error) {
	return fn(seed, samples)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(samples int) (Integrator, error)

// Integrator calls fn(samples).
func (fn FactoryFunc) Integrator(samples int) (Integrator, error) {
	return fn(samples)
}

// MonteCarloFactory binds opts to NewMonteCarlo.
func MonteCarloFactory(opts ...Option) SeededFactory {
	return SeededFactoryFunc(func(seed int64, samples int) (Integrator, error) {
		mc, err := NewMonteCarlo(seed, samples, opts...)
		if err != nil {
			return nil, err
		}

		return mc, nil
	})
}

// QuasiMonteCarloFactory binds opts to NewQuasiMonteCarlo.
func QuasiMonteCarloFactory(opts ...Option) Factory {
	return FactoryFunc(func(samples int) (Integrator, error) {
		q, err := NewQuasiMonteCarlo(samples, opts...)
		if err != nil {
			return nil, err
		}

		return q, nil
	})
}

// RiemannFactory binds opts to NewRiemann.
func RiemannFactory(opts ...Option) Factory {
	return FactoryFunc(func(samples int) (Integrator, error) {
		r, err := NewRiemann(samples, opts...)
		if err != nil {
			return nil, err
		}

		return r, nil
	})
}

// TrapezoidFactory builds trapezoidal integrators.
func TrapezoidFactory() Factory {
	return FactoryFunc(func(samples int) (Integrator, error) {
		t, err := NewTrapezoid(samples)
		if err != nil {
			return nil, err
		}

		return t, nil
	})
}

// SimpsonFactory builds Simpson integrators; even counts fail with
// ErrSimpsonEvenPoints.
func SimpsonFactory() Factory {
	return FactoryFunc(func(samples int) (Integrator, error) {
		s, err := NewSimpson(samples)
		if err != nil {
			return nil, err
		}

		return s, nil
	})
}
