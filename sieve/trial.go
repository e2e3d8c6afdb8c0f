package sieve

// calculatePrime reports whether n is prime by trial division over odd
// divisors below n/2.
//
// The bound is n/2 rather than the square root, so the check is O(n).
func calculatePrime(n int) bool {
	if n < 2 {
		return false
	} else if n == 2 {
		return true
	} else if n%2 == 0 {
		return false
	}

	maxFactor := n / 2
	for d := 3; d < maxFactor; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
