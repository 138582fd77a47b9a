package arith

import (
	"fmt"

	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
)

// MulMod returns (a*b) mod m for positive m without intermediate overflow.
//
// The product is accumulated by doubling a along the binary expansion of b,
// with every addition reduced immediately, so no intermediate ever leaves
// [0, m) even when a, b and m are close to the int64 limit.
func MulMod(a, b, m int64) int64 {
	a %= m
	if a < 0 {
		a += m
	}
	b %= m
	if b < 0 {
		b += m
	}

	var r int64
	for b > 0 {
		if b&1 == 1 {
			// r = (r + a) mod m, written so r+a is only formed
			// when it stays below m.
			if m-r > a {
				r += a
			} else {
				r -= m - a
			}
		}
		b >>= 1
		if b > 0 {
			if m-a > a {
				a += a
			} else {
				a -= m - a
			}
		}
	}
	return r
}

// ModPow returns aⁿ mod p by square-and-multiply over MulMod.
//
// a and n must be non-negative, p positive; 0⁰ is out of range.
func ModPow(a, n, p int64) (int64, error) {
	if a < 0 || n < 0 || p < 1 {
		return 0, fmt.Errorf("arith: modpow(%d, %d, %d): %w", a, n, p, numerr.ErrOutOfRange)
	}
	if a == 0 && n == 0 {
		return 0, fmt.Errorf("arith: modpow(0, 0, %d): %w", p, numerr.ErrOutOfRange)
	}

	if a == 0 {
		return 0, nil
	}
	if n == 0 && p == 1 {
		return 0, nil
	}

	result := int64(1)
	for ; n > 0; n /= 2 {
		if n%2 == 1 {
			result = MulMod(result, a, p)
		}
		a = MulMod(a, a, p)
	}
	return result, nil
}

// ExtGCD runs the extended Euclidean algorithm and returns x, y, g with
// x*m + y*n = g, where g is the non-negative gcd of m and n.
func ExtGCD(m, n int64) (x, y, g int64, err error) {
	if m == 0 && n == 0 {
		return 0, 0, 0, fmt.Errorf("arith: egcd(0, 0): %w", numerr.ErrOutOfRange)
	}

	a1, a2 := int64(0), int64(1)
	b1, b2 := int64(1), int64(0)
	for n != 0 {
		q := m / n
		r := m - q*n
		a := a2 - q*a1
		b := b2 - q*b1
		m, n = n, r
		a2, a1 = a1, a
		b2, b1 = b1, b
	}
	x, y, g = a2, b2, m

	if g < 0 {
		x, y, g = -x, -y, -g
	}
	return x, y, g, nil
}

// ModInverse returns the inverse of a modulo p, normalized into [0, p).
// a and p must be positive and coprime.
func ModInverse(a, p int64) (int64, error) {
	if a <= 0 || p <= 0 {
		return 0, fmt.Errorf("arith: modinv(%d, %d): %w", a, p, numerr.ErrOutOfRange)
	}

	_, y, g, err := ExtGCD(p, a)
	if err != nil {
		return 0, err
	}
	if g != 1 {
		return 0, fmt.Errorf("arith: modinv(%d, %d): arguments not coprime: %w", a, p, numerr.ErrOutOfRange)
	}

	if y > 0 {
		return y, nil
	}
	return y + p, nil
}
