// SPDX-License-Identifier: MIT
// Package integration: sentinel error set.
// Configuration errors are reported by constructors, never deferred to the
// first Integrate call. Numeric anomalies (NaN, ±Inf) produced by an integrand
// are NOT errors; they propagate to the caller unmodified.

package integration

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveSamples is returned when the number of sample points is <= 0.
	ErrNonPositiveSamples = errors.New("integration: number of sample points must be > 0")

	// ErrSimpsonEvenPoints is returned when Simpson's rule is configured with an
	// even number of evaluation points. Counts are never rounded.
	ErrSimpsonEvenPoints = errors.New("integration: simpson rule needs an odd number of points")

	// ErrTooFewPoints is returned when a grid rule cannot span the interval
	// (Simpson needs >= 3 points, trapezoid >= 2).
	ErrTooFewPoints = errors.New("integration: too few evaluation points for rule")

	// ErrInvalidWorkers is returned when the worker count is < 1.
	ErrInvalidWorkers = errors.New("integration: workers must be >= 1")

	// ErrInvalidEvaluationPoint is returned for an unknown Riemann evaluation point.
	ErrInvalidEvaluationPoint = errors.New("integration: unknown evaluation point")

	// ErrNilIntegrand is returned when Integrate receives a nil function.
	ErrNilIntegrand = errors.New("integration: integrand is nil")

	// ErrNilDomain is returned when Integrate receives a nil domain.
	ErrNilDomain = errors.New("integration: domain is nil")

	// ErrUnsupportedDimension is returned when a rule cannot handle the domain
	// dimension (grid rules are one-dimensional; every domain needs d >= 1).
	ErrUnsupportedDimension = errors.New("integration: unsupported domain dimension")

	// ErrDimensionMismatch indicates inconsistent lengths, e.g. lower/upper
	// bounds of different size or Halton bases that do not match the domain.
	ErrDimensionMismatch = errors.New("integration: dimension mismatch")

	// ErrEmptyDomain is returned when a domain is built with zero dimensions.
	ErrEmptyDomain = errors.New("integration: domain has no dimensions")

	// ErrInvalidBounds is returned for NaN/Inf bounds or lower > upper.
	ErrInvalidBounds = errors.New("integration: invalid domain bounds")

	// ErrInvalidRadius is returned when a radius is not finite and > 0.
	ErrInvalidRadius = errors.New("integration: radius must be finite and > 0")

	// ErrNotSquare is returned when an affine map is built from a non-square matrix.
	ErrNotSquare = errors.New("integration: affine matrix is not square")

	// ErrDegenerateDomain is returned when a transform collapses the unit cube
	// onto a set of measure zero (zero or non-finite determinant).
	ErrDegenerateDomain = errors.New("integration: transform is degenerate")
)

// integrationErrorf tags err with the operation that produced it.
// Callers still match the sentinel via errors.Is.
func integrationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
