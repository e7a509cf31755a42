// Package core provides the thread-safe in-memory Graph that sparse matrices
// are loaded into.
//
// The Graph G = (V,E) is parameterized by its vertex payload type. Any type
// implementing Vertex (ID() int / SetID(int)) can be stored; the graph keys
// its catalog by that integer ID, so vertex uniqueness is always ID-based.
//
// Behaviors (GraphOption):
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// NewBipartiteGraph returns the weighted, undirected multigraph used for
// matrix loads: each coordinate entry becomes its own edge.
//
// Storage:
//
//	vertices[id]                       = payload V
//	edges[edgeID]                      = *Edge
//	adjacencyList[from][to][edgeID]    = struct{}{}
//
// Edge IDs are "e1", "e2", … from an atomic counter; Edges(), Neighbors()
// and EdgesBetween() return edges in that creation order, Vertices() and
// NeighborIDs() return ascending IDs.
//
// Core Methods:
//
//	AddVertex(v V) error                                   // O(1), idempotent by ID
//	HasVertex(id int) bool / Vertex(id int) (V, error)     // O(1)
//	RemoveVertex(id int) error                             // O(E)
//	AddEdge(from, to V, opts...) (edgeID string, err error)            // O(1)†
//	AddWeightedEdge(from, to V, w float64, opts...) (string, error)    // O(1)†
//	SetEdgeWeight(edgeID string, w float64) error          // O(1)
//	RemoveEdge(edgeID string) error                        // O(1)
//	HasEdge(from, to int) bool                             // O(1)
//	EdgesBetween(from, to int) []*Edge                     // O(k log k)
//	Neighbors(id int) ([]*Edge, error)                     // O(d log d)
//	NeighborIDs(id int) ([]int, error)                     // O(d log d)
//	Vertices() []int / Edges() []*Edge                     // sorted
//	Degree(id int) (in, out, undirected int, err error)    // O(E)
//	Stats() *GraphStats                                    // O(V+E)
//	CloneEmpty() / Clone() / Clear()
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Errors: ErrNilVertex, ErrBadVertexID, ErrVertexNotFound, ErrEdgeNotFound,
// ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrMixedEdgesNotAllowed. Check them with errors.Is.
package core
