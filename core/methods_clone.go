// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Vertex payloads are shared, not copied: V is caller-owned (e.g. a *VectorVertex
//     whose vector the caller assigns after load).

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return cloneVertices(g)
}

// Clone returns a copy of the Graph: configuration, vertices, edges, and adjacency.
// Edges are deep-copied; vertex payloads are shared.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := cloneVertices(g)
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		ensureAdjacency(clone, ne.From, ne.To)
		clone.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(clone, ne.To, ne.From)
			clone.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear resets vertices, edges and the edge ID counter; flags are preserved.
func (g *Graph[V]) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[int]V)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[int]map[int]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}

// cloneVertices builds a graph with g's flags, vertex catalog and edge counter.
// Caller holds read locks on g.
func cloneVertices[V Vertex](g *Graph[V]) *Graph[V] {
	clone := NewGraph[V]()
	clone.flags = g.flags
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id int
	var v V
	for id, v = range g.vertices {
		clone.vertices[id] = v
		clone.adjacencyList[id] = make(map[int]map[string]struct{})
	}

	return clone
}
