// SPDX-License-Identifier: MIT

package lowdisc

// VanDerCorput returns the index-th element (zero-based) of the Van der Corput
// sequence in the given base: the digit reversal of index+1 mirrored around
// the radix point.
//
// Algorithm:
//
//	n, x, scale = index+1, 0, 1/base
//	while n > 0:
//	    x += (n mod base)·scale
//	    n  = ⌊n / base⌋
//	    scale /= base
//
// Behavior highlights:
//   - Base 2, index 0..4 → 0.5, 0.25, 0.75, 0.125, 0.625.
//   - The result lies strictly inside (0,1) for index < MaxUint64.
//
// Errors:
//   - ErrInvalidBase if base < 2.
//
// Complexity: O(log_base(index)).
func VanDerCorput(index uint64, base uint32) (float64, error) {
	if base < 2 {
		return 0, ErrInvalidBase
	}

	return radicalInverse(index, uint64(base)), nil
}

// radicalInverse is the unchecked kernel behind VanDerCorput; base >= 2.
// index MaxUint64 wraps n to 0 and yields 0.
func radicalInverse(index, base uint64) float64 {
	var (
		n     = index + 1
		b     = float64(base)
		x     = 0.0
		scale = 1.0 / b
	)
	for n > 0 {
		x += float64(n%base) * scale
		n /= base
		scale /= b
	}

	return x
}

// VanDerCorputSequence is the one-dimensional Sequence over a single base.
type VanDerCorputSequence struct {
	base uint64
}

var _ Sequence = (*VanDerCorputSequence)(nil)

// NewVanDerCorput returns the Van der Corput sequence in base.
//
// Errors:
//   - ErrInvalidBase if base < 2.
func NewVanDerCorput(base uint32) (*VanDerCorputSequence, error) {
	if base < 2 {
		return nil, ErrInvalidBase
	}

	return &VanDerCorputSequence{base: uint64(base)}, nil
}

// Base reports the radix of the sequence.
func (s *VanDerCorputSequence) Base() uint32 { return uint32(s.base) }

// Dimension is always 1.
func (s *VanDerCorputSequence) Dimension() int { return 1 }

// Value returns the index-th scalar of the sequence.
func (s *VanDerCorputSequence) Value(index uint64) float64 {
	return radicalInverse(index, s.base)
}

// SamplePoint returns the index-th point as a one-element slice.
func (s *VanDerCorputSequence) SamplePoint(index uint64) []float64 {
	return []float64{radicalInverse(index, s.base)}
}

// Fill writes the index-th point into dst[0]. dst must have length >= 1.
func (s *VanDerCorputSequence) Fill(dst []float64, index uint64) {
	dst[0] = radicalInverse(index, s.base)
}
