// Package prime implements probabilistic primality testing and bounded
// random prime search over an injected random source.
package prime

import (
	"fmt"
	"io"

	"github.com/mrityunjay-tripathi/qpp/internal/params"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/arith"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/sample"
)

// IsPrime reports whether |n| is prime, with a false-positive probability
// bounded by 2⁻⁸⁰. |n| must be at least 2.
func IsPrime(rand io.Reader, n int64) (bool, error) {
	return IsPrimeIters(rand, n, params.MillerRabinIterations)
}

// IsPrimeIters is IsPrime with an explicit number of Miller-Rabin rounds k;
// the false-positive bound is 2⁻ᵏ.
//
// A composite is usually rejected by a single Fermat test before the
// Miller-Rabin rounds run. Witnesses are drawn independently from rand, so
// concurrent callers must pass isolated or locked sources.
func IsPrimeIters(rand io.Reader, n int64, k int) (bool, error) {
	if n < 0 {
		n = -n
	}
	if n < 2 {
		return false, fmt.Errorf("prime: isprime(%d): %w", n, numerr.ErrOutOfRange)
	}
	if n == 2 || n == 3 {
		return true, nil
	}

	// Fermat pre-check: one exponentiation rejects most composites.
	x := sample.Int64(rand, 2, n-1)
	z, err := arith.ModPow(x, n-1, n)
	if err != nil {
		return false, err
	}
	if z != 1 {
		return false, nil
	}

	// Write n-1 as 2ᵘ * r with r odd.
	u := 0
	r := n - 1
	for r&1 == 0 {
		u++
		r >>= 1
	}

	for i := 0; i < k; i++ {
		a := sample.Int64(rand, 2, n-2)
		z, err := arith.ModPow(a, r, n)
		if err != nil {
			return false, err
		}
		if z == 1 || z == n-1 {
			continue
		}
		witnessed := false
		for j := 0; j < u-1; j++ {
			z = arith.MulMod(z, z, n)
			if z == 1 {
				return false, nil
			}
			if z == n-1 {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return false, nil
		}
	}
	return true, nil
}

// RandPrime draws a uniform candidate from [a, b] until one passes the
// primality test, giving up after the default attempt budget.
func RandPrime(rand io.Reader, a, b int64) (int64, error) {
	return RandPrimeAttempts(rand, a, b, params.PrimeSearchAttempts)
}

// RandPrimeAttempts is RandPrime with an explicit attempt budget.
//
// Candidates with |c| < 2 are rejected, |c| = 2 is accepted as is, and
// anything else runs a cheap Fermat pre-test before the full confirmation.
// When the budget runs out the search fails with ErrSearchExhausted.
func RandPrimeAttempts(rand io.Reader, a, b int64, attempts int) (int64, error) {
	if a > b {
		return 0, fmt.Errorf("prime: randprime: inverted interval [%d, %d]: %w", a, b, numerr.ErrOutOfRange)
	}

	for i := 0; i < attempts; i++ {
		candidate := sample.Int64(rand, a, b)
		m := candidate
		if m < 0 {
			m = -m
		}
		if m < 2 {
			continue
		}
		if m == 2 {
			return candidate, nil
		}

		// Fermat pre-test over |candidate|.
		x := sample.Int64(rand, 2, m-1)
		z, err := arith.ModPow(x, m-1, m)
		if err != nil {
			return 0, err
		}
		if z != 1 {
			continue
		}

		ok, err := IsPrime(rand, candidate)
		if err != nil {
			return 0, err
		}
		if ok {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("prime: randprime: no prime in [%d, %d] after %d attempts: %w",
		a, b, attempts, numerr.ErrSearchExhausted)
}
