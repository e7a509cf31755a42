// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Stats() is O(V+E); use it for quick post-load assertions and diagnostics.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool

	VertexCount int
	// IsolatedVertexCount counts vertices with no undirected and no outgoing edge.
	IsolatedVertexCount int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int

	// TotalWeight is the sum of all edge weights.
	TotalWeight float64
}

// Weighted reports whether non-zero weights are permitted.
// If false, AddWeightedEdge and SetEdgeWeight reject non-zero weights with ErrBadWeight.
func (g *Graph[V]) Weighted() bool { return g.weighted }

// Directed reports the default directedness applied to newly created edges.
func (g *Graph[V]) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph[V]) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph[V]) Multigraph() bool { return g.allowMulti }

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph[V]) MixedEdges() bool { return g.allowMixed }

// Stats produces a deterministic snapshot of configuration flags and catalog sizes,
// including a classification of edges by their Directed flag.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Under muEdgeAdj.RLock, scan edges and count isolated vertices.
//
// Behavior highlights:
//   - Never holds both locks at the same time.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph[V]) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
		stats.TotalWeight += e.Weight
	}
	for _, toMap := range g.adjacencyList {
		if len(toMap) == 0 {
			stats.IsolatedVertexCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// IsNil reports whether the receiver is a nil *Graph, so typed-nil graphs
// passed behind interfaces can be rejected without reflection.
func (g *Graph[V]) IsNil() bool { return g == nil }
