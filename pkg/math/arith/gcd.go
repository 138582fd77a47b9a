package arith

import (
	"fmt"

	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
)

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// GCD returns the non-negative greatest common divisor of m and n.
// GCD(0, n) = |n| by convention; GCD(0, 0) is out of range.
func GCD(m, n int64) (int64, error) {
	if m == 0 && n == 0 {
		return 0, fmt.Errorf("arith: gcd(0, 0): %w", numerr.ErrOutOfRange)
	}
	if m == 0 || n == 0 {
		r := abs(m)
		if a := abs(n); a > r {
			r = a
		}
		return r, nil
	}

	result := int64(1)
	for n != 0 {
		result = n
		n = m % result
		m = result
	}
	return abs(result), nil
}

// GCDAll left-folds GCD over ns. The fold starts from ns[0] unchanged,
// so a zero first element is fine as long as a later element is not also
// zero.
func GCDAll(ns []int64) (int64, error) {
	if len(ns) == 0 {
		return 0, fmt.Errorf("arith: gcd of empty list: %w", numerr.ErrZeroSize)
	}

	result := ns[0]
	for _, n := range ns[1:] {
		var err error
		result, err = GCD(result, n)
		if err != nil {
			return 0, err
		}
	}
	return abs(result), nil
}

// LCM returns the non-negative least common multiple of m and n.
// LCM(0, 0) is out of range.
func LCM(m, n int64) (int64, error) {
	if m == 0 && n == 0 {
		return 0, fmt.Errorf("arith: lcm(0, 0): %w", numerr.ErrOutOfRange)
	}
	g, err := GCD(m, n)
	if err != nil {
		return 0, err
	}
	return abs(m * n / g), nil
}

// LCMAll left-folds LCM over ns.
//
// A singleton list returns ns[0] as is, sign included. This differs from the
// pairwise form, which normalizes the sign; both behaviors are deliberate.
func LCMAll(ns []int64) (int64, error) {
	if len(ns) == 0 {
		return 0, fmt.Errorf("arith: lcm of empty list: %w", numerr.ErrZeroSize)
	}
	if len(ns) == 1 {
		return ns[0], nil
	}
	for _, n := range ns {
		if n == 0 {
			return 0, fmt.Errorf("arith: lcm of list containing zero: %w", numerr.ErrOutOfRange)
		}
	}

	result := ns[0]
	for _, n := range ns[1:] {
		var err error
		result, err = LCM(result, n)
		if err != nil {
			return 0, err
		}
	}
	return abs(result), nil
}
