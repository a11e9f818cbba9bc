// SPDX-License-Identifier: MIT

package integration

import (
	"gonum.org/v1/gonum/mat"
)

// Affine is the parallelepiped {A·u + b : u ∈ [0,1]ⁿ}. Its Jacobian is the
// constant det A, computed once at construction.
type Affine struct {
	n   int
	a   []float64 // row-major n×n copy of A
	b   []float64
	det float64
}

var _ Domain = (*Affine)(nil)

// NewAffine builds the image of the unit cube under z = A·u + b.
//
// Implementation:
//   - Stage 1: validate shape (square A, len(b) == rows).
//   - Stage 2: compute det A via LU (gonum mat.Det); reject zero/non-finite.
//   - Stage 3: copy A into a flat row-major buffer for allocation-free Transform.
//
// Errors:
//   - ErrEmptyDomain if A is 0×0.
//   - ErrNotSquare if A is not square.
//   - ErrDimensionMismatch if len(b) != rows(A).
//   - ErrDegenerateDomain if det A is 0, NaN or ±Inf.
func NewAffine(a mat.Matrix, b []float64) (*Affine, error) {
	r, c := a.Dims()
	if r != c {
		return nil, ErrNotSquare
	}
	if r == 0 {
		return nil, ErrEmptyDomain
	}
	if len(b) != r {
		return nil, ErrDimensionMismatch
	}

	det := mat.Det(a)
	if det == 0 || !isFinite(det) {
		return nil, ErrDegenerateDomain
	}

	raw := mat.DenseCopyOf(a).RawMatrix()
	flat := make([]float64, r*r)
	for i := 0; i < r; i++ {
		copy(flat[i*r:(i+1)*r], raw.Data[i*raw.Stride:i*raw.Stride+r])
	}

	return &Affine{
		n:   r,
		a:   flat,
		b:   append([]float64(nil), b...),
		det: det,
	}, nil
}

// Dimension reports n.
func (t *Affine) Dimension() int { return t.n }

// Determinant reports det A (signed).
func (t *Affine) Determinant() float64 { return t.det }

// Transform writes A·unit + b into dst.
func (t *Affine) Transform(dst, unit []float64) {
	var i, j int
	var s float64
	for i = 0; i < t.n; i++ {
		s = t.b[i]
		row := t.a[i*t.n : (i+1)*t.n]
		for j = 0; j < t.n; j++ {
			s += row[j] * unit[j]
		}
		dst[i] = s
	}
}

// Jacobian is the constant det A. Integrators take its absolute value.
func (t *Affine) Jacobian([]float64) float64 { return t.det }
