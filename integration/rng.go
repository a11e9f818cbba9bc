// SPDX-License-Identifier: MIT

// Package integration - deterministic pseudo-random streams for Monte Carlo.
//
// Goals:
//   - Determinism: same (seed, samples, workers) ⇒ bit-identical estimates.
//   - No time-based sources anywhere; seed==0 maps to a fixed default.
//   - One generator per worker, derived from the master seed. A *rand.Rand is
//     never shared across goroutines, so draws need no lock.

package integration

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// normalizeSeed applies the seed==0 policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}

// rngFromSeed returns a deterministic generator for seed (after the
// seed==0 policy).
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(normalizeSeed(seed)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring stream ids give unrelated
// seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// workerRNG returns the generator owned by worker w out of n.
// A single worker draws from the master seed itself, so WithWorkers(1)
// matches the plain sequential stream.
func workerRNG(seed int64, w, n int) *rand.Rand {
	if n == 1 {
		return rngFromSeed(seed)
	}

	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(w))))
}
