// SPDX-License-Identifier: MIT
// Package: mmgraph/matrix
//
// errors.go — sentinel errors for the matrix package.
// Callers branch with errors.Is; context is attached with %w.

package matrix

import "errors"

var (
	// ErrGraphNil indicates a nil source graph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrInvalidDimensions indicates rows or cols < 1.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNotBipartite indicates an edge that does not join a row to a column.
	ErrNotBipartite = errors.New("matrix: edge is not row-column")

	// ErrOutOfRange indicates a cell index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
