// Package perm implements validation, inversion and composition of
// permutations of {0, ..., k-1}.
package perm

import (
	"fmt"

	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
)

// Valid reports whether p is a bijection on {0, ..., len(p)-1}.
func Valid(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inverse returns the permutation q with q[p[i]] = i for all i.
func Inverse(p []int) ([]int, error) {
	if !Valid(p) {
		return nil, fmt.Errorf("perm: inverse: %w", numerr.ErrPermInvalid)
	}

	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv, nil
}

// Compose returns the composition p∘sigma, i.e. sigma applied first:
// result[i] = p[sigma[i]]. Both operands must be valid permutations of the
// same length.
func Compose(p, sigma []int) ([]int, error) {
	if !Valid(p) || !Valid(sigma) || len(p) != len(sigma) {
		return nil, fmt.Errorf("perm: compose: %w", numerr.ErrPermInvalid)
	}

	out := make([]int, len(p))
	for i := range out {
		out[i] = p[sigma[i]]
	}
	return out, nil
}
