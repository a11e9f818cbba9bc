// SPDX-License-Identifier: MIT

package lowdisc

import "errors"

var (
	// ErrInvalidBase is returned when a base is smaller than 2.
	ErrInvalidBase = errors.New("lowdisc: base must be >= 2")

	// ErrNoBases is returned when a multi-dimensional sequence is built
	// without any base (dimension 0).
	ErrNoBases = errors.New("lowdisc: at least one base is required")

	// ErrBasesNotCoprime is returned when two Halton bases share a factor;
	// such axes would be correlated.
	ErrBasesNotCoprime = errors.New("lowdisc: bases must be pairwise coprime")

	// ErrInvalidDimension is returned when a requested dimension is < 1.
	ErrInvalidDimension = errors.New("lowdisc: dimension must be >= 1")
)
