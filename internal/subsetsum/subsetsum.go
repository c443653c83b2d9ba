// Package subsetsum decides whether a target sum can be formed from a subset of a
// sequence of positive integers and reconstructs one such subset.
package subsetsum

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositive is returned when the sequence contains a value <= 0
	ErrNonPositive = errors.New("sequence values must be positive")
	// ErrUnknownMethod is returned by NewSolver for an unsupported method
	ErrUnknownMethod = errors.New("unknown method")
	// ErrTotalTooLarge is returned when the sequence total does not fit in an int
	ErrTotalTooLarge = errors.New("sequence total too large")
)

// Solver finds a subsequence of its sequence that adds up to target.
// The returned values keep their original relative order. ok is false when
// no subsequence reaches target.
type Solver interface {
	CheckSum(target int) (subset []int, ok bool)
}

// Method selects a solver implementation
type Method string

const (
	// MethodBottomUp fills a full table iteratively
	MethodBottomUp Method = "bottom-up"
	// MethodTopDown explores the table recursively with memoization
	MethodTopDown Method = "top-down"
)

// NewSolver creates the solver for method
func NewSolver(method Method, sequence []int) (Solver, error) {
	var (
		solver Solver
		err    error
	)
	switch method {
	case MethodBottomUp:
		solver, err = NewBottomUp(sequence)
	case MethodTopDown:
		solver, err = NewTopDown(sequence)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if err != nil {
		return nil, err
	}
	return solver, nil
}

// validate copies sequence and returns its total
func validate(sequence []int) ([]int, int, error) {
	total := 0
	for i, v := range sequence {
		if v <= 0 {
			return nil, 0, fmt.Errorf("%w: value %d at index %d", ErrNonPositive, v, i)
		}
		// total+1 is used as a table width
		if v >= math.MaxInt-total {
			return nil, 0, fmt.Errorf("%w: value %d at index %d", ErrTotalTooLarge, v, i)
		}
		total += v
	}
	return append([]int(nil), sequence...), total, nil
}

// reconstruct walks a filled table back from (n, target). reached(i, k) must
// report whether sum k can be formed from the first i values.
func reconstruct(sequence []int, target int, reached func(i, k int) bool) []int {
	subset := []int{}
	i, remaining := len(sequence), target
	for i > 0 && remaining > 0 {
		if reached(i, remaining) && !reached(i-1, remaining) {
			subset = append(subset, sequence[i-1])
			remaining -= sequence[i-1]
		}
		i--
	}

	for l, r := 0, len(subset)-1; l < r; l, r = l+1, r-1 {
		subset[l], subset[r] = subset[r], subset[l]
	}
	return subset
}
