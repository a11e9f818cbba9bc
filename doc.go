// Package quadra is a pure-Go numerical integration core.
//
//	summation/   — Kahan compensated accumulation
//	lowdisc/     — Van der Corput and Halton low-discrepancy sequences
//	integration/ — Riemann, trapezoid, Simpson, Monte Carlo and quasi-Monte
//	               Carlo integrators over unit-cube-transformed domains
//
// Leaf-to-root: summation ← lowdisc ← integration. Nothing in the core
// performs I/O or depends on the numeric types of its callers.
//
//	go get github.com/katalvlaran/quadra
package quadra
