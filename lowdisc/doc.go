// SPDX-License-Identifier: MIT

// Package lowdisc generates deterministic low-discrepancy (quasi-random)
// sample points in the unit hypercube.
//
// 🚀 What is a low-discrepancy sequence?
//
//	A deterministic sequence whose first N points cover [0,1)^d far more
//	evenly than N independent uniform draws. The star discrepancy of a
//	Van der Corput / Halton prefix is O(log(N)^d / N), against O(1/√N) for
//	pseudo-random sampling, which is why quasi-Monte Carlo integration of
//	smooth integrands converges faster than plain Monte Carlo.
//
// ✨ Key features:
//   - VanDerCorput: scalar radical inverse of (index+1) in a given base
//   - Halton: one Van der Corput coordinate per axis, pairwise-coprime bases
//     (the first d primes by default)
//   - Sequence: index-addressed, stateless interface; safe for concurrent use
//   - Stream: thin stateful "next point" adapter over any Sequence
//
// ⚙️ Usage:
//
//	h, err := lowdisc.NewHalton(2, 3)
//	if err != nil {
//	  // ErrInvalidBase, ErrBasesNotCoprime, ErrNoBases
//	}
//	p := h.SamplePoint(0) // [0.5, 0.333…]
//
// Index addressing:
//
//	Points are a pure function of their index. Splitting the range [0, N)
//	into disjoint blocks lets several goroutines draw from one *Halton
//	without locks; the Stream adapter is only sugar for sequential callers.
//
// Caveats:
//   - Never build a d-dimensional point by slicing one 1-D stream into
//     consecutive chunks (point i = vdc(i·d), …, vdc(i·d+d-1)). The
//     coordinates become strongly correlated; with base 2 and d=2 every point
//     lands in a single quadrant.
//   - Structured sequences can alias with periodic integrands whose period
//     matches a power of a base. This is inherent to the construction.
//   - Consecutive Halton coordinates with large, close bases are correlated
//     on short prefixes; prefer small d or long runs.
package lowdisc
