// SPDX-License-Identifier: MIT

// Package summation provides compensated (Kahan) floating-point accumulation.
//
// 🚀 Why compensated summation?
//
//	Adding n float64 values left to right loses up to O(n·ε) of accuracy,
//	where ε is the unit round-off. When a large running sum absorbs many
//	small terms, each term can vanish completely. Kahan's algorithm keeps a
//	running compensation for the low-order bits lost by every addition and
//	feeds it back into the next one, so the error bound becomes O(ε),
//	independent of n.
//
// ✨ Key features:
//   - Kahan: zero-value-ready accumulator with Add / Total / Reset / Merge
//   - Sum: one-shot compensated sum of a slice
//
// ⚙️ Usage:
//
//	var acc summation.Kahan
//	for _, v := range values {
//	  acc.Add(v)
//	}
//	total := acc.Total()
//
// Numeric policy:
//   - NaN and ±Inf propagate per IEEE 754; they are not errors.
//
// Concurrency:
//   - A Kahan value is NOT goroutine-safe. Give every worker its own
//     accumulator and fold the partial results with Merge.
package summation
