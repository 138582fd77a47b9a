// Package numerr defines the failure kinds shared by the math packages.
//
// Callers match them with errors.Is; the producing packages wrap them with
// operation context.
package numerr

import "errors"

var (
	// ErrOutOfRange indicates an argument outside the operation's domain.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrZeroSize indicates an empty list or sequence where at least one
	// element is required.
	ErrZeroSize = errors.New("empty argument")

	// ErrPermInvalid indicates a sequence that is not a bijection on
	// {0, ..., k-1}.
	ErrPermInvalid = errors.New("invalid permutation")

	// ErrSearchExhausted indicates a bounded probabilistic search that used
	// its full attempt budget without success.
	ErrSearchExhausted = errors.New("search budget exhausted")
)
