// SPDX-License-Identifier: MIT
// Package: mmgraph/matrix
//
// options.go — functional options for NewRatingMatrix.
//
// Defaults:
//   • duplicates = DuplicateSum (parallel row-column edges add up)

package matrix

import "fmt"

// DuplicatePolicy decides how parallel edges fold into one cell.
type DuplicatePolicy int

const (
	// DuplicateSum adds the weights of parallel edges.
	DuplicateSum DuplicatePolicy = iota
	// DuplicateLast keeps the weight of the most recently created edge.
	DuplicateLast
)

type options struct {
	duplicates DuplicatePolicy
}

// Option customizes NewRatingMatrix.
type Option func(*options)

func gatherOptions(opts ...Option) options {
	o := options{duplicates: DuplicateSum}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDuplicates sets the duplicate policy. Panics on unknown values.
func WithDuplicates(p DuplicatePolicy) Option {
	if p != DuplicateSum && p != DuplicateLast {
		panic(fmt.Sprintf("matrix: WithDuplicates: unknown policy %d", p))
	}

	return func(o *options) { o.duplicates = p }
}
