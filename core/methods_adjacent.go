// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by edge creation sequence; NeighborIDs() sorts ascending.
// Concurrency:
//   - Read locks only; helpers below assume the caller holds muEdgeAdj for writing.
// AI-HINT (file):
//   - In a bipartite load, NeighborIDs(row) are all column-side IDs (>= rows) and vice versa.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
//
// Neighborhood policy:
//   - Undirected edges are returned from either endpoint.
//   - Directed edges are returned only from their source (outgoing).
//   - Parallel edges appear once each; self-loops appear once.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d) for d incident edges.
func (g *Graph[V]) Neighbors(id int) ([]*Edge, error) {
	// Lock order muVert -> muEdgeAdj, same as mutators.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted ascending.
func (g *Graph[V]) NeighborIDs(id int) ([]int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]int, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to the IDs of its
// incident edges, each slice in creation order. Isolated vertices map to an
// empty slice. Callers may retain and mutate the result.
// Complexity: O(V + E log E).
func (g *Graph[V]) AdjacencyList() map[int][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[int][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		buf := make([]*Edge, 0, len(toMap))
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, g.edges[eid])
			}
		}
		sortEdges(buf)
		ids := make([]string, len(buf))
		for i, e := range buf {
			ids[i] = e.ID
		}
		result[from] = ids
	}

	return result
}

// ensureVertexBucket guarantees that adjacencyList[id] is initialized.
// Caller holds muEdgeAdj for writing.
func ensureVertexBucket[V Vertex](g *Graph[V], id int) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[int]map[string]struct{})
	}
}

// ensureAdjacency guarantees that adjacencyList[from][to] is initialized.
// Caller holds muEdgeAdj for writing.
func ensureAdjacency[V Vertex](g *Graph[V], from, to int) {
	ensureVertexBucket(g, from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from from→to and, for undirected non-loop
// edges, from the mirror bucket. Empty inner buckets are pruned; the outer
// per-vertex bucket stays so isolated vertices keep an adjacency entry.
// Caller holds muEdgeAdj for writing.
func removeAdjacency[V Vertex](g *Graph[V], e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}
