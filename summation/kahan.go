// SPDX-License-Identifier: MIT

package summation

// Kahan accumulates float64 values with a running compensation term.
// The zero value is an empty accumulator (sum = compensation = 0.0).
//
// Algorithm (per Add):
//
//	corrected    = value - compensation
//	newSum       = sum + corrected
//	compensation = (newSum - sum) - corrected
//	sum          = newSum
//
// The compensation holds the negated low-order part that the last addition
// could not represent; it is subtracted from the next value.
type Kahan struct {
	sum          float64
	compensation float64
}

// Add accumulates value.
//
// Complexity: O(1).
func (k *Kahan) Add(value float64) {
	corrected := value - k.compensation
	newSum := k.sum + corrected
	k.compensation = (newSum - k.sum) - corrected
	k.sum = newSum
}

// Total returns the compensated running sum.
func (k *Kahan) Total() float64 {
	return k.sum
}

// Reset returns the accumulator to its zero state.
func (k *Kahan) Reset() {
	k.sum = 0
	k.compensation = 0
}

// Merge folds the total of other into k.
//
// Only other's total is carried over; its pending compensation is below the
// resolution of its own sum and is dropped. Merging w partial sums adds
// error that grows with w (typically O(√w·ε)) on top of the per-partial bound.
func (k *Kahan) Merge(other Kahan) {
	k.Add(other.sum)
}

// Sum returns the compensated sum of values. An empty slice sums to 0.
//
// Complexity: O(n) time, O(1) space.
func Sum(values []float64) float64 {
	var acc Kahan
	for _, v := range values {
		acc.Add(v)
	}

	return acc.Total()
}
