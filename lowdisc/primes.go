// SPDX-License-Identifier: MIT

package lowdisc

// smallPrimes covers every Halton dimension used in practice; FirstPrimes
// extends past it by trial division.
var smallPrimes = []uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
	59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131,
}

// FirstPrimes returns the first n primes in ascending order.
// n <= 0 yields an empty slice.
//
// Complexity: O(1) per prime up to 32; trial division beyond.
func FirstPrimes(n int) []uint32 {
	if n <= 0 {
		return []uint32{}
	}
	out := make([]uint32, 0, n)
	for _, p := range smallPrimes {
		if len(out) == n {
			return out
		}
		out = append(out, p)
	}

	for c := smallPrimes[len(smallPrimes)-1] + 2; len(out) < n; c += 2 {
		if isPrime(c, out) {
			out = append(out, c)
		}
	}

	return out
}

// isPrime tests odd c against the ascending primes found so far.
func isPrime(c uint32, primes []uint32) bool {
	for _, p := range primes {
		if uint64(p)*uint64(p) > uint64(c) {
			return true
		}
		if c%p == 0 {
			return false
		}
	}

	return true
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
