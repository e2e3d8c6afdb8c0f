package sieve

import (
	"math"

	"golang.org/x/exp/constraints"
)

// checkedAdd returns a+b and false if the sum does not fit into T.
func checkedAdd[T constraints.Integer](a, b T) (sum T, ok bool) {
	sum = a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return sum, false
	}

	return sum, true
}

// maxClassifiable is the largest bound the cursor can be extended to without
// cursor+2 wrapping around.
const maxClassifiable = math.MaxInt - 2

// oddIndex maps an odd integer n >= 3 to its bit position.
func oddIndex(n int) int {
	return (n - 3) / 2
}
