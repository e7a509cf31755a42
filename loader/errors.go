// SPDX-License-Identifier: MIT
// Package: mmgraph/loader
//
// errors.go — sentinel errors for the loader package.
//
// Error policy:
//   • Each failure class has exactly one sentinel; callers use errors.Is.
//   • Lower-level errors (os, mmio, core) stay in the chain next to the
//     sentinel, so errors.Is(err, mmio.ErrBadEntry) also works.
//   • Nothing is retried or rolled back; a graph that failed to load is
//     partially populated and should be discarded.

package loader

import "errors"

// ErrInvalidArgument indicates a nil graph, nil factory, nil reader or empty
// path. It is returned before any I/O is attempted.
var ErrInvalidArgument = errors.New("loader: invalid argument")

// ErrIO indicates the file could not be opened, or reading/parsing it failed.
var ErrIO = errors.New("loader: i/o failure")

// ErrInstantiation indicates the vertex factory failed or returned nil.
var ErrInstantiation = errors.New("loader: cannot instantiate vertex")

// ErrGraph indicates the graph container rejected a vertex, edge or weight.
var ErrGraph = errors.New("loader: graph rejected mutation")
