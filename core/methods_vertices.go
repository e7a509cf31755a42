// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
//
// AI-Hints (file):
//   - Vertex identity is the integer returned by V.ID(); payload equality is never consulted.
//   - Vertices() is a stable enumeration surface; rely on it for reproducible outputs.
package core

import "sort"

// AddVertex inserts v if no vertex with the same ID is present (idempotent).
//
// Implementation:
//   - Stage 1: Reject nil payloads (ErrNilVertex) and negative IDs (ErrBadVertexID).
//   - Stage 2: Under muVert write lock, check presence by ID; if missing, register v.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Idempotent: adding a second payload with an existing ID keeps the first one.
//
// Errors:
//   - ErrNilVertex, ErrBadVertexID.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph[V]) AddVertex(v V) error {
	if isNilVertex(v) {
		return ErrNilVertex
	}
	id := v.ID()
	if id < 0 {
		return ErrBadVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = v

	g.muEdgeAdj.Lock()
	ensureVertexBucket(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the payload registered under id, or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph[V]) Vertex(id int) (V, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		var zero V
		return zero, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes a vertex and all incident edges (directed and undirected).
//
// Implementation:
//   - Stage 1: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 2: Verify presence (ErrVertexNotFound).
//   - Stage 3: Scan the edge catalog once and drop every incident edge.
//   - Stage 4: Delete the vertex and its adjacency bucket.
//
// Complexity:
//   - Time O(E), Space O(1) extra.
func (g *Graph[V]) RemoveVertex(id int) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacencyList, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph[V]) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	var id int
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Prefer it over len(Vertices()) to avoid the sort.
func (g *Graph[V]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog (ID -> payload).
// Payloads are shared with the graph; treat them as owned by the caller of
// the load, not by this snapshot.
// Complexity: O(V).
func (g *Graph[V]) VerticesMap() map[int]V {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[int]V, len(g.vertices))
	var id int
	var v V
	for id, v = range g.vertices {
		out[id] = v
	}

	return out
}

// Degree returns the degree components of the given vertex ID:
//
//   - in: number of incoming directed edges (e.To == id)
//   - out: number of outgoing directed edges (e.From == id)
//   - undirected: contribution from undirected edges
//
// Policy:
//   - Directed self-loop contributes +1 to both in and out.
//   - Undirected self-loop contributes +2 to undirected.
//
// Complexity: O(E); incoming directed edges are not indexed separately.
func (g *Graph[V]) Degree(id int) (in, out, undirected int, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	for _, e := range g.edges {
		isFrom := e.From == id
		isTo := e.To == id
		if !isFrom && !isTo {
			continue
		}
		if e.Directed {
			if isFrom {
				out++
			}
			if isTo {
				in++
			}
			continue
		}
		if isFrom && isTo {
			undirected += 2
		} else {
			undirected++
		}
	}

	return in, out, undirected, nil
}
