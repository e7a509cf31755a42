// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so you can safely read a loaded graph
// across goroutines with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructors.
//
// Errors:
//
//	ErrNilVertex            - vertex value is nil.
//	ErrBadVertexID          - vertex ID is negative.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrBadWeight            - non-zero weight on an unweighted graph, or NaN/Inf.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge override without mixed mode.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil vertex value was passed in.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrBadVertexID indicates that the vertex reports a negative ID.
	ErrBadVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph,
	// or a weight that is not a finite number.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a mixed direction in edges when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex is the capability every vertex payload must provide: a settable,
// non-negative integer identity. The graph keys its catalog by ID(), so two
// distinct values with the same ID are the same vertex as far as the graph
// is concerned.
type Vertex interface {
	// ID returns the current identity.
	ID() int

	// SetID overwrites the identity. No validation is performed.
	SetID(id int)
}

// Nilable is implemented by pointer-backed vertex types that want typed-nil
// values (a nil *T stored in V) to be rejected with ErrNilVertex.
type Nilable interface {
	IsNil() bool
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To (vertex IDs), a real Weight and
// a Directed flag that overrides the Graph's default directedness when mixed
// edges are enabled.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the value carried by the edge (zero in unweighted graphs).
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// seq is the numeric part of ID; used for ordering.
	seq uint64
}

// IsNil reports whether the receiver is nil.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(f *flags)

// flags holds the immutable construction-time policy of a Graph.
type flags struct {
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow mixed directed edges
}

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(f *flags) { f.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(f *flags) { f.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(f *flags) { f.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(f *flags) { f.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(f *flags) { f.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the core in-memory graph data structure, parameterized by the
// vertex payload type V.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph[V Vertex] struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	flags

	// Storage
	nextEdgeID uint64           // atomic edge ID generator
	vertices   map[int]V        // vertex ID → payload
	edges      map[string]*Edge // edge ID → Edge

	// adjacencyList[from][to][Edge.ID] = struct{}{}
	adjacencyList map[int]map[int]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph[V Vertex](opts ...GraphOption) *Graph[V] {
	g := &Graph[V]{
		vertices:      make(map[int]V),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[int]map[int]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(&g.flags)
	}

	return g
}

// NewBipartiteGraph creates an undirected, weighted multigraph: the shape a
// sparse matrix maps onto, where every coordinate entry is its own edge and
// repeated (row, col) pairs must not be merged.
func NewBipartiteGraph[V Vertex](opts ...GraphOption) *Graph[V] {
	base := []GraphOption{WithWeighted(), WithMultiEdges()}

	return NewGraph[V](append(base, opts...)...)
}

// isNilVertex reports whether v is a nil interface or a typed nil that
// advertises itself through Nilable.
func isNilVertex[V Vertex](v V) bool {
	if any(v) == nil {
		return true
	}
	if n, ok := any(v).(Nilable); ok {
		return n.IsNil()
	}

	return false
}
