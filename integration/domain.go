// SPDX-License-Identifier: MIT

package integration

import "math"

// Box is the axis-aligned hyper-rectangle Π_k [lower_k, upper_k], reached
// from the unit cube by the per-axis affine map z_k = lower_k + w_k·u_k.
type Box struct {
	lower  []float64
	width  []float64
	volume float64
}

var _ Domain = (*Box)(nil)

// NewBox builds a hyper-rectangle from its corner coordinates.
//
// Errors:
//   - ErrEmptyDomain if no bounds are given.
//   - ErrDimensionMismatch if len(lower) != len(upper).
//   - ErrInvalidBounds if any bound is NaN/±Inf or lower_k > upper_k.
func NewBox(lower, upper []float64) (*Box, error) {
	if len(lower) != len(upper) {
		return nil, ErrDimensionMismatch
	}
	if len(lower) == 0 {
		return nil, ErrEmptyDomain
	}

	b := &Box{
		lower:  append([]float64(nil), lower...),
		width:  make([]float64, len(lower)),
		volume: 1,
	}
	for k := range lower {
		if !isFinite(lower[k]) || !isFinite(upper[k]) || lower[k] > upper[k] {
			return nil, ErrInvalidBounds
		}
		b.width[k] = upper[k] - lower[k]
		b.volume *= b.width[k]
	}

	return b, nil
}

// NewInterval is the one-dimensional Box [a, b].
func NewInterval(a, b float64) (*Box, error) {
	return NewBox([]float64{a}, []float64{b})
}

// Dimension reports the number of axes.
func (b *Box) Dimension() int { return len(b.lower) }

// Volume reports Π_k (upper_k - lower_k).
func (b *Box) Volume() float64 { return b.volume }

// Transform maps unit to lower + width⊙unit.
func (b *Box) Transform(dst, unit []float64) {
	for k := range b.lower {
		dst[k] = b.lower[k] + b.width[k]*unit[k]
	}
}

// Jacobian is constant: the box volume.
func (b *Box) Jacobian([]float64) float64 { return b.volume }

// Disk is the closed disk of radius r around (cx, cy), reached through polar
// coordinates: ρ = r·u₀, θ = 2π·u₁.
type Disk struct {
	cx, cy, r float64
}

var _ Domain = (*Disk)(nil)

// NewDisk builds a disk domain.
//
// Errors:
//   - ErrInvalidBounds if the center is not finite.
//   - ErrInvalidRadius if r is not finite and > 0.
func NewDisk(cx, cy, r float64) (*Disk, error) {
	if !isFinite(cx) || !isFinite(cy) {
		return nil, ErrInvalidBounds
	}
	if !isFinite(r) || r <= 0 {
		return nil, ErrInvalidRadius
	}

	return &Disk{cx: cx, cy: cy, r: r}, nil
}

// Dimension is 2.
func (d *Disk) Dimension() int { return 2 }

// Transform maps (u₀, u₁) to center + r·u₀·(cos 2πu₁, sin 2πu₁).
func (d *Disk) Transform(dst, unit []float64) {
	rho := d.r * unit[0]
	sin, cos := math.Sincos(2 * math.Pi * unit[1])
	dst[0] = d.cx + rho*cos
	dst[1] = d.cy + rho*sin
}

// Jacobian is 2π·r²·u₀.
func (d *Disk) Jacobian(unit []float64) float64 {
	return 2 * math.Pi * d.r * d.r * unit[0]
}

// Ball is the closed 3-D ball of radius r around center, reached through
// spherical coordinates: ρ = r·u₀, θ = π·u₁ (polar), φ = 2π·u₂ (azimuth).
type Ball struct {
	center [3]float64
	r      float64
}

var _ Domain = (*Ball)(nil)

// NewBall builds a 3-D ball domain.
//
// Errors:
//   - ErrInvalidBounds if the center is not finite.
//   - ErrInvalidRadius if r is not finite and > 0.
func NewBall(center [3]float64, r float64) (*Ball, error) {
	for _, c := range center {
		if !isFinite(c) {
			return nil, ErrInvalidBounds
		}
	}
	if !isFinite(r) || r <= 0 {
		return nil, ErrInvalidRadius
	}

	return &Ball{center: center, r: r}, nil
}

// Dimension is 3.
func (b *Ball) Dimension() int { return 3 }

// Transform maps the unit cube onto the ball in spherical coordinates.
func (b *Ball) Transform(dst, unit []float64) {
	rho := b.r * unit[0]
	sinT, cosT := math.Sincos(math.Pi * unit[1])
	sinP, cosP := math.Sincos(2 * math.Pi * unit[2])
	dst[0] = b.center[0] + rho*sinT*cosP
	dst[1] = b.center[1] + rho*sinT*sinP
	dst[2] = b.center[2] + rho*cosT
}

// Jacobian is 2π²·r³·u₀²·sin(π·u₁).
func (b *Ball) Jacobian(unit []float64) float64 {
	return 2 * math.Pi * math.Pi * b.r * b.r * b.r * unit[0] * unit[0] * math.Sin(math.Pi*unit[1])
}

// HalfLine is the unbounded interval [a, ∞), reached through
// z = a + u/(1-u). The Jacobian 1/(1-u)² diverges at u = 1; sampling rules
// that evaluate the closed endpoint (trapezoid, Simpson) return ±Inf or NaN
// there, per IEEE 754.
type HalfLine struct {
	a float64
}

var _ Domain = (*HalfLine)(nil)

// NewHalfLine builds [a, ∞).
//
// Errors:
//   - ErrInvalidBounds if a is not finite.
func NewHalfLine(a float64) (*HalfLine, error) {
	if !isFinite(a) {
		return nil, ErrInvalidBounds
	}

	return &HalfLine{a: a}, nil
}

// Dimension is 1.
func (h *HalfLine) Dimension() int { return 1 }

// Transform maps u to a + u/(1-u).
func (h *HalfLine) Transform(dst, unit []float64) {
	dst[0] = h.a + unit[0]/(1-unit[0])
}

// Jacobian is 1/(1-u)².
func (h *HalfLine) Jacobian(unit []float64) float64 {
	s := 1 - unit[0]

	return 1 / (s * s)
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
