package prime

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mrityunjay-tripathi/qpp/internal/drbg"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
	"github.com/mrityunjay-tripathi/qpp/pkg/pool"
)

func sieveBelow(n int) []bool {
	composite := make([]bool, n)
	composite[0], composite[1] = true, true
	for p := 2; p*p < n; p++ {
		if composite[p] {
			continue
		}
		for q := p * p; q < n; q += p {
			composite[q] = true
		}
	}
	return composite
}

// With 80 Miller-Rabin rounds the verdict must agree with a sieve on the
// whole range, every run.
func TestIsPrimeAgreesWithSieve(t *testing.T) {
	composite := sieveBelow(10001)
	rdr := drbg.New([]byte("sieve agreement"))
	for n := int64(2); n <= 10000; n++ {
		got, err := IsPrime(rdr, n)
		require.NoError(t, err)
		require.Equal(t, !composite[n], got, "disagreement at %d", n)
	}
}

func TestIsPrime(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 104729, -7, -104729} {
		ok, err := IsPrime(rand.Reader, p)
		require.NoError(t, err)
		assert.True(t, ok, "%d should be prime", p)
	}

	for _, c := range []int64{4, 561, 1105, 104730, -561} {
		ok, err := IsPrime(rand.Reader, c)
		require.NoError(t, err)
		assert.False(t, ok, "%d should be composite", c)
	}

	for _, n := range []int64{0, 1, -1} {
		_, err := IsPrime(rand.Reader, n)
		assert.ErrorIs(t, err, numerr.ErrOutOfRange, "isprime(%d)", n)
	}
}

// Carmichael numbers fool the Fermat pre-check for coprime bases, so they
// exercise the Miller-Rabin stage specifically.
func TestIsPrimeCarmichael(t *testing.T) {
	for _, c := range []int64{561, 1105, 1729, 2465, 2821, 6601, 8911, 41041, 62745} {
		ok, err := IsPrime(rand.Reader, c)
		require.NoError(t, err)
		assert.False(t, ok, "carmichael number %d declared prime", c)
	}
}

func TestIsPrimeLarge(t *testing.T) {
	// Near the int64 width limit, where MulMod's overflow safety matters.
	const bigPrime = int64(9223372036854775783) // largest prime below 2⁶³
	ok, err := IsPrime(rand.Reader, bigPrime)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsPrime(rand.Reader, bigPrime-4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPrimeIters(t *testing.T) {
	// Even a single round never rejects an actual prime.
	for _, p := range []int64{5, 7, 11, 997} {
		ok, err := IsPrimeIters(rand.Reader, p, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRandPrime(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, err := RandPrime(rand.Reader, 100, 200)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, int64(100))
		assert.LessOrEqual(t, p, int64(200))

		ok, err := IsPrime(rand.Reader, p)
		require.NoError(t, err)
		assert.True(t, ok, "randprime returned composite %d", p)
	}
}

func TestRandPrimeEdgeCases(t *testing.T) {
	_, err := RandPrime(rand.Reader, 10, 5)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange, "inverted interval")

	// Only 2 in range: accepted immediately.
	p, err := RandPrime(rand.Reader, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, p)

	// Only composites in range: the budget must run out, never returning
	// an incorrect composite.
	_, err = RandPrime(rand.Reader, 24, 28)
	assert.ErrorIs(t, err, numerr.ErrSearchExhausted)

	// A single huge composite: succeeds never, exhausts always.
	const n = int64(1_000_000_000_000_000_000)
	_, err = RandPrime(rand.Reader, n, n)
	assert.ErrorIs(t, err, numerr.ErrSearchExhausted)

	// Candidates below 2 in magnitude are rejected, not accepted.
	_, err = RandPrime(rand.Reader, -1, 1)
	assert.ErrorIs(t, err, numerr.ErrSearchExhausted)
}

func TestRandPrimeDeterministic(t *testing.T) {
	p1, err := RandPrime(drbg.New([]byte("replay")), 1000, 2000)
	require.NoError(t, err)
	p2, err := RandPrime(drbg.New([]byte("replay")), 1000, 2000)
	require.NoError(t, err)
	assert.Equal(t, p1, p2, "same stream must give the same prime")
}

// Concurrent searches over one shared source must still give independent,
// correct primes when the source is locked.
func TestRandPrimeConcurrent(t *testing.T) {
	reader := pool.NewLockedReader(rand.Reader)
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			p, err := RandPrime(reader, 100, 10000)
			if err != nil {
				return err
			}
			ok, err := IsPrime(reader, p)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("concurrent randprime returned composite %d", p)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRandPrimes(t *testing.T) {
	pl := pool.New(0)
	defer pl.TearDown()

	ps, err := RandPrimes(pl, rand.Reader, 100, 10000, 8)
	require.NoError(t, err)
	require.Len(t, ps, 8)
	for _, p := range ps {
		assert.GreaterOrEqual(t, p, int64(100))
		assert.LessOrEqual(t, p, int64(10000))
		ok, err := IsPrime(rand.Reader, p)
		require.NoError(t, err)
		assert.True(t, ok, "%d is not prime", p)
	}
}

// A prime-rich interval must never spuriously exhaust: every batch has to
// come back complete, run after run, however the workers race to finish.
func TestRandPrimesRepeated(t *testing.T) {
	pl := pool.New(8)
	defer pl.TearDown()

	for i := 0; i < 300; i++ {
		ps, err := RandPrimes(pl, rand.Reader, 100, 200, 2)
		require.NoError(t, err, "iteration %d", i)
		require.Len(t, ps, 2)
		for _, p := range ps {
			require.GreaterOrEqual(t, p, int64(100))
			require.LessOrEqual(t, p, int64(200))
		}
	}
}

func TestRandPrimesNilPool(t *testing.T) {
	ps, err := RandPrimes(nil, rand.Reader, 100, 200, 4)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for _, p := range ps {
		ok, err := IsPrime(rand.Reader, p)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRandPrimesEdgeCases(t *testing.T) {
	_, err := RandPrimes(nil, rand.Reader, 10, 5, 2)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)

	_, err = RandPrimes(nil, rand.Reader, 100, 200, 0)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)

	_, err = RandPrimes(nil, rand.Reader, 24, 28, 2)
	assert.ErrorIs(t, err, numerr.ErrSearchExhausted)
}
