// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for mmgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (a minimal Vertex payload and
//     pre-configured graphs) shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/mmgraph/core"
)

// Common vertex IDs used across core tests.
const (
	IDA = 0
	IDB = 1
	IDC = 2
	IDD = 3
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0    = 0.0
	WeightHalf = 0.5
	Weight5    = 5.0
	WeightNeg  = -3.5
)

// node is the smallest possible Vertex payload.
type node struct {
	id    int
	label string
}

func (n *node) ID() int      { return n.id }
func (n *node) SetID(id int) { n.id = id }
func (n *node) IsNil() bool  { return n == nil }

// N returns a fresh *node with the given ID.
func N(id int) *node { return &node{id: id} }

// NewGraphFull returns a Graph configured for broad contract coverage:
// weighted, multi-edge, loops.
func NewGraphFull() *core.Graph[*node] {
	return core.NewGraph[*node](core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
}
