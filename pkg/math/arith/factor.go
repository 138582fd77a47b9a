package arith

import (
	"fmt"

	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
)

// Factors returns the prime factorization of |n| in ascending order with
// multiplicity. n must not be 0, 1 or -1.
//
// Trial division with the d*d > n cutoff runs in O(√n).
func Factors(n int64) ([]int64, error) {
	if n < 0 {
		n = -n
	}
	if n == 0 || n == 1 {
		return nil, fmt.Errorf("arith: factors(%d): %w", n, numerr.ErrOutOfRange)
	}

	var result []int64
	d := int64(2)
	for n > 1 {
		for n%d == 0 {
			result = append(result, d)
			n /= d
		}
		d++
		if d*d > n {
			if n > 1 {
				result = append(result, n)
			}
			break
		}
	}
	return result, nil
}
