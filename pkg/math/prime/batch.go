package prime

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/mrityunjay-tripathi/qpp/internal/params"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
	"github.com/mrityunjay-tripathi/qpp/pkg/pool"
)

// exhausted is the search result once the shared attempt budget is spent; it
// is non-nil so the pool stops searching.
type exhausted struct{}

// RandPrimes draws count primes from [a, b], spreading the candidate search
// over the pool's workers. A nil pool searches on the calling goroutine.
//
// The random source is wrapped in a LockedReader, so workers never observe
// the same bytes. The shared budget is count times the single-search budget;
// exceeding it fails the whole batch with ErrSearchExhausted.
func RandPrimes(pl *pool.Pool, rand io.Reader, a, b int64, count int) ([]int64, error) {
	if count <= 0 {
		return nil, fmt.Errorf("prime: randprimes: %d primes requested: %w", count, numerr.ErrOutOfRange)
	}
	if a > b {
		return nil, fmt.Errorf("prime: randprimes: inverted interval [%d, %d]: %w", a, b, numerr.ErrOutOfRange)
	}

	reader := pool.NewLockedReader(rand)
	budget := int64(count) * int64(params.PrimeSearchAttempts)
	var spent int64

	results := pl.Search(count, func() interface{} {
		if atomic.AddInt64(&spent, 1) > budget {
			return exhausted{}
		}
		p, err := RandPrimeAttempts(reader, a, b, 1)
		if err != nil {
			return nil
		}
		return p
	})

	out := make([]int64, 0, count)
	for _, res := range results {
		p, ok := res.(int64)
		if !ok {
			return nil, fmt.Errorf("prime: randprimes: no %d primes in [%d, %d] within budget: %w",
				count, a, b, numerr.ErrSearchExhausted)
		}
		out = append(out, p)
	}
	return out, nil
}
