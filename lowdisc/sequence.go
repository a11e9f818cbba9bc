// SPDX-License-Identifier: MIT

package lowdisc

// Sequence is an index-addressed point generator over [0,1)^d.
//
// Contract:
//   - SamplePoint and Fill are pure functions of index: no cursor, no
//     mutation. Implementations in this package are safe for concurrent use.
//   - SamplePoint allocates a fresh slice of length Dimension().
//   - Fill writes the same point into dst[:Dimension()] without allocating;
//     dst must be at least Dimension() long.
type Sequence interface {
	Dimension() int
	SamplePoint(index uint64) []float64
	Fill(dst []float64, index uint64)
}
