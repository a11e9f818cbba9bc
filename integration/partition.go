// SPDX-License-Identifier: MIT

package integration

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quadra/summation"
)

// Block is a contiguous run of sample indices [Start, Start+Count).
type Block struct {
	Start uint64
	Count int
}

// SplitRange partitions [start, start+count) into at most parts contiguous,
// disjoint, non-empty blocks whose sizes differ by at most one. Earlier
// blocks take the remainder. count <= 0 or parts <= 0 yields nil.
//
// Complexity: O(parts).
func SplitRange(start uint64, count, parts int) []Block {
	if count <= 0 || parts <= 0 {
		return nil
	}
	if parts > count {
		parts = count
	}

	var (
		size   = count / parts
		extra  = count % parts
		next   = start
		blocks = make([]Block, parts)
	)
	for w := 0; w < parts; w++ {
		c := size
		if w < extra {
			c++
		}
		blocks[w] = Block{Start: next, Count: c}
		next += uint64(c)
	}

	return blocks
}

// reduceBlocks runs work once per block and returns the compensated total
// of all partial sums.
//
// A single block runs on the calling goroutine. Otherwise every block gets
// its own goroutine and its own accumulator; partials are merged in block
// order, so the result is deterministic for a fixed partition.
func reduceBlocks(blocks []Block, work func(worker int, b Block) summation.Kahan) float64 {
	if len(blocks) == 1 {
		acc := work(0, blocks[0])

		return acc.Total()
	}

	partials := make([]summation.Kahan, len(blocks))
	var g errgroup.Group
	for w := range blocks {
		w := w
		g.Go(func() error {
			partials[w] = work(w, blocks[w])

			return nil
		})
	}
	_ = g.Wait() // workers are infallible

	var total summation.Kahan
	for _, p := range partials {
		total.Merge(p)
	}

	return total.Total()
}
