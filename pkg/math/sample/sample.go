// Package sample adapts an external random byte source into the uniform
// integer draws the rest of the math packages consume.
//
// Every function takes the source as an explicit io.Reader, so callers can
// inject crypto/rand, a deterministic stream for tests, or a locked reader
// when sampling from multiple goroutines.
package sample

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mrityunjay-tripathi/qpp/internal/params"
)

const maxIterations = params.MaxSampleIterations

// ErrMaxIterations signals a faulty random source, not a domain error, so it
// is raised as a panic rather than returned.
var ErrMaxIterations = fmt.Errorf("sample: failed to sample after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Int64 samples a uniform integer in the inclusive interval [lo, hi].
//
// An inverted interval is a programmer error and panics; callers with
// caller-supplied bounds must validate them first.
func Int64(rand io.Reader, lo, hi int64) int64 {
	if lo > hi {
		panic(fmt.Sprintf("sample: inverted interval [%d, %d]", lo, hi))
	}
	buf := make([]byte, 8)
	width := uint64(hi) - uint64(lo) + 1
	if width == 0 {
		// The full 2⁶⁴ range, nothing to reject.
		mustReadBits(rand, buf)
		return int64(binary.BigEndian.Uint64(buf))
	}
	// Rejection sampling: discard draws below 2⁶⁴ mod width so that the
	// remaining values cover a whole number of copies of [0, width).
	threshold := -width % width
	for i := 0; i < maxIterations; i++ {
		mustReadBits(rand, buf)
		v := binary.BigEndian.Uint64(buf)
		if v < threshold {
			continue
		}
		return int64(uint64(lo) + v%width)
	}
	panic(ErrMaxIterations)
}
