// SPDX-License-Identifier: MIT
// Package: mmgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never in the definition.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrBadShape indicates a negative row or column count.
var ErrBadShape = errors.New("builder: rows and cols must be non-negative")

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")
