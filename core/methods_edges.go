// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddWeightedEdge/SetEdgeWeight/RemoveEdge/
//       HasEdge/GetEdge/EdgesBetween/Edges/EdgeCount, plus filtered removals.
// Determinism:
//   - Edges() returns edges sorted by creation sequence ("e1" < "e2" < … < "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Unweighted graphs MUST keep weight==0 (else ErrBadWeight).
//   - Parallel edges are never merged; each AddEdge yields a fresh ID.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new zero-weight edge between from and to and returns its ID.
// The weight may be set afterwards with SetEdgeWeight.
//
// Endpoints are registered through AddVertex, so an endpoint whose ID is
// already present keeps its original payload.
//
// Errors: ErrNilVertex, ErrBadVertexID, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, opts ...EdgeOption) (string, error) {
	return g.AddWeightedEdge(from, to, 0, opts...)
}

// AddWeightedEdge creates a new edge with the given weight, optionally directed
// in a mixed graph.
//
// Steps:
//  1. Validate endpoints, weight, loops.
//  2. If opts present without allowMixed ⇒ ErrMixedEdgesNotAllowed.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj, check multi-edge constraint.
//  5. Generate eid atomically, build Edge, apply opts.
//  6. Store in g.edges and link adjacency; mirror when undirected.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph[V]) AddWeightedEdge(from, to V, weight float64, opts ...EdgeOption) (string, error) {
	if isNilVertex(from) || isNilVertex(to) {
		return "", ErrNilVertex
	}
	if err := g.checkWeight(weight); err != nil {
		return "", err
	}
	fromID, toID := from.ID(), to.ID()
	if fromID == toID && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[fromID][toID]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	seq, eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: fromID, To: toID, Weight: weight, Directed: g.directed, seq: seq}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	g.edges[eid] = e
	ensureAdjacency(g, fromID, toID)
	g.adjacencyList[fromID][toID][eid] = struct{}{}

	if !e.Directed && fromID != toID {
		ensureAdjacency(g, toID, fromID)
		g.adjacencyList[toID][fromID][eid] = struct{}{}
	}

	return eid, nil
}

// SetEdgeWeight overwrites the weight of an existing edge.
//
// Errors:
//   - ErrBadWeight: NaN/Inf, or non-zero weight on an unweighted graph.
//   - ErrEdgeNotFound: no edge with that ID.
//
// Complexity: O(1).
func (g *Graph[V]) SetEdgeWeight(edgeID string, weight float64) error {
	if err := g.checkWeight(weight); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// checkWeight applies the graph's weight policy.
func (g *Graph[V]) checkWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	return nil
}

// RemoveEdge deletes one edge and its mirror.
// Complexity: O(1) removal + O(V) cleanup in degenerate cases.
func (g *Graph[V]) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Works both ways for undirected edges since AddEdge mirrors adjacency.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph[V]) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns every edge linking from→to (including parallel edges),
// in creation order. Undirected edges are found from either endpoint.
// Complexity: O(k log k) for k parallel edges.
func (g *Graph[V]) EdgesBetween(from, to int) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	out := make([]*Edge, 0, len(bucket))
	var eid string
	for eid = range bucket {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph[V]) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph[V]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether there exists at least one edge with Directed == true.
// Complexity: O(E).
func (g *Graph[V]) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes all edges failing the predicate.
// pred must not mutate the graph.
// Complexity: O(E) scan + O(V) cleanup.
func (g *Graph[V]) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
}

// sortEdges orders edges by creation sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// nextEdgeID reserves the next sequence number and renders it as "e<n>".
// Avoids fmt.Sprintf on the hot path of bulk loads.
func nextEdgeID[V Vertex](g *Graph[V]) (uint64, string) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return n, string(buf)
}
