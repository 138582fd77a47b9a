// Package contfrac converts between real numbers and simple continued
// fractions.
//
// The expansion is the workhorse of rational phase reconstruction: a measured
// phase s/r is expanded and truncated, and the convergents recover the
// low-denominator fraction that encodes the order r.
package contfrac

import (
	"fmt"
	"math"

	"github.com/mrityunjay-tripathi/qpp/internal/params"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
)

// ExpandCut expands x into at most n continued-fraction terms, stopping early
// once the next value is non-finite or its magnitude exceeds cut.
//
// The early stop matters: past numerical noise the expansion produces
// meaningless large terms, so a finite cut keeps reconstructions sane.
func ExpandCut(x float64, n int, cut float64) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("contfrac: expand: %d terms requested: %w", n, numerr.ErrOutOfRange)
	}

	terms := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		var a float64
		if x > 0 {
			a = math.Floor(x)
		} else {
			a = math.Ceil(x)
		}
		terms = append(terms, int64(a))
		x = 1 / (x - a)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > cut {
			return terms, nil
		}
	}
	return terms, nil
}

// Expand is ExpandCut with the default cutoff.
func Expand(x float64, n int) ([]int64, error) {
	return ExpandCut(x, n, params.ContFracCut)
}

// RealN evaluates the first n terms of cf back to a real number via the
// continuant recurrence, folding from the innermost term outward.
//
// n is clamped to len(cf); a single term degenerates to cf[0].
func RealN(cf []int64, n int) (float64, error) {
	if len(cf) == 0 {
		return 0, fmt.Errorf("contfrac: real: empty expansion: %w", numerr.ErrZeroSize)
	}
	if n <= 0 {
		return 0, fmt.Errorf("contfrac: real: %d terms requested: %w", n, numerr.ErrOutOfRange)
	}
	if n > len(cf) {
		n = len(cf)
	}
	if n == 1 {
		return float64(cf[0]), nil
	}

	tmp := 1 / float64(cf[n-1])
	// Fold down to index 1 inclusive; cf[0] is the integer part added last.
	for i := n - 2; i >= 1; i-- {
		tmp = 1 / (tmp + float64(cf[i]))
	}
	return float64(cf[0]) + tmp, nil
}

// Real evaluates the whole expansion.
func Real(cf []int64) (float64, error) {
	return RealN(cf, len(cf))
}
