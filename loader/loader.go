// SPDX-License-Identifier: MIT
// Package: mmgraph/loader
//
// loader.go — LoadGraph / LoadGraphFromReader.
//
// Transformation (R rows, C columns, N records):
//   • row r (0-based)    → vertex id r
//   • column c (0-based) → vertex id R + c
//   • record (r, c, v)   → one edge r — R+c with weight v
//   • every id in [0, R+C) not seen in a record → isolated vertex
//
// Contract:
//   • Vertices are created lazily through the caller's Factory, assigned their
//     id with SetID, added to the graph, and remembered in an index table so
//     each id is instantiated at most once.
//   • Records are applied in file order; duplicates yield parallel edges.
//   • On error the graph is left partially populated (no rollback).
//
// AI-HINT: the graph must accept parallel edges and non-zero weights, i.e.
// core.NewBipartiteGraph (weighted + multi). A plain core.NewGraph rejects
// the first SetEdgeWeight with ErrGraph wrapping core.ErrBadWeight.

package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/mmgraph/core"
	"github.com/katalvlaran/mmgraph/mmio"
)

const (
	methodLoadGraph           = "LoadGraph"
	methodLoadGraphFromReader = "LoadGraphFromReader"

	// maxIndexHint caps the index-table preallocation, since the header's
	// dimensions come from untrusted input.
	maxIndexHint = 1 << 20
)

// Graph is the subset of the graph container the loader mutates.
// *core.Graph[V] satisfies it.
type Graph[V core.Vertex] interface {
	AddVertex(v V) error
	AddEdge(from, to V, opts ...core.EdgeOption) (string, error)
	SetEdgeWeight(edgeID string, weight float64) error
}

// Factory produces a fresh vertex with an unset id.
type Factory[V core.Vertex] func() (V, error)

// FactoryOf adapts an infallible constructor such as vertex.New.
func FactoryOf[V core.Vertex](newV func() V) Factory[V] {
	if newV == nil {
		return nil
	}

	return func() (V, error) { return newV(), nil }
}

// Stats reports what a load did.
type Stats struct {
	Rows             int // R from the header
	Cols             int // C from the header
	Entries          int // records applied
	VerticesCreated  int // vertices inserted; ids the graph already held are not counted
	IsolatedVertices int // of which inserted by the final pass
	EdgesAdded       int
}

// LoadGraph reads the coordinate file at path into g, creating vertices with
// newVertex.
//
// Errors:
//   - ErrInvalidArgument: g or newVertex nil, path empty. No I/O happens.
//   - ErrIO: open failure or malformed content (mmio sentinels stay in chain).
//   - ErrInstantiation: newVertex failed or returned a nil vertex.
//   - ErrGraph: g rejected a vertex, edge or weight.
//
// Complexity: O(R + C + N) graph mutations.
func LoadGraph[V core.Vertex](g Graph[V], newVertex Factory[V], path string, opts ...Option) error {
	if err := checkArgs(methodLoadGraph, g, newVertex); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("%s: empty path: %w", methodLoadGraph, ErrInvalidArgument)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", methodLoadGraph, ErrIO, err)
	}
	defer f.Close()

	cfg := newLoaderConfig(opts...)
	cfg.logger = cfg.logger.With(zap.String("path", path))

	return load(methodLoadGraph, g, newVertex, f, cfg)
}

// LoadGraphFromReader is LoadGraph over an already opened source.
func LoadGraphFromReader[V core.Vertex](g Graph[V], newVertex Factory[V], r io.Reader, opts ...Option) error {
	if err := checkArgs(methodLoadGraphFromReader, g, newVertex); err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("%s: nil reader: %w", methodLoadGraphFromReader, ErrInvalidArgument)
	}

	return load(methodLoadGraphFromReader, g, newVertex, r, newLoaderConfig(opts...))
}

func checkArgs[V core.Vertex](method string, g Graph[V], newVertex Factory[V]) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrInvalidArgument)
	}
	if n, ok := g.(core.Nilable); ok && n.IsNil() {
		return fmt.Errorf("%s: nil graph: %w", method, ErrInvalidArgument)
	}
	if newVertex == nil {
		return fmt.Errorf("%s: nil vertex factory: %w", method, ErrInvalidArgument)
	}

	return nil
}

// builder carries the per-load state: the target graph, the factory and the
// id → vertex index table.
type builder[V core.Vertex] struct {
	method    string
	g         Graph[V]
	newVertex Factory[V]
	index     map[int]V
	stats     Stats
}

func load[V core.Vertex](method string, g Graph[V], newVertex Factory[V], src io.Reader, cfg loaderConfig) error {
	b := &builder[V]{method: method, g: g, newVertex: newVertex}
	if cfg.stats != nil {
		defer func() { *cfg.stats = b.stats }()
	}

	rd := mmio.NewReader(src, mmio.WithIndexBase(cfg.indexBase))
	h, err := rd.ReadHeader()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrIO, err)
	}
	b.stats.Rows, b.stats.Cols = h.Rows, h.Cols
	b.index = make(map[int]V, min(h.Vertices(), maxIndexHint))
	cfg.logger.Debug("matrix header",
		zap.Stringer("banner", h.Banner),
		zap.Int("rows", h.Rows),
		zap.Int("cols", h.Cols),
		zap.Int("entries", h.Entries),
		zap.Int("index_base", cfg.indexBase),
	)

	for {
		e, rerr := rd.ReadEntry()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return fmt.Errorf("%s: %w: %w", method, ErrIO, rerr)
		}
		if err = b.apply(h.Rows+e.Col, e); err != nil {
			return err
		}
	}

	if cfg.isolated {
		for id := 0; id < h.Vertices(); id++ {
			if _, ok := b.index[id]; ok {
				continue
			}
			_, created, verr := b.vertex(id)
			if verr != nil {
				return verr
			}
			if created {
				b.stats.IsolatedVertices++
			}
		}
	}

	cfg.logger.Info("matrix loaded",
		zap.Int("rows", h.Rows),
		zap.Int("cols", h.Cols),
		zap.Int("entries", b.stats.Entries),
		zap.Int("vertices", b.stats.VerticesCreated),
		zap.Int("edges", b.stats.EdgesAdded),
	)

	return nil
}

// apply adds the edge for one record; colID is the column's vertex id.
func (b *builder[V]) apply(colID int, e mmio.Entry) error {
	from, _, err := b.vertex(e.Row)
	if err != nil {
		return err
	}
	to, _, err := b.vertex(colID)
	if err != nil {
		return err
	}

	eid, err := b.g.AddEdge(from, to)
	if err != nil {
		return fmt.Errorf("%s: edge %d-%d: %w: %w", b.method, e.Row, colID, ErrGraph, err)
	}
	b.stats.EdgesAdded++
	if err = b.g.SetEdgeWeight(eid, e.Value); err != nil {
		return fmt.Errorf("%s: weight of %s: %w: %w", b.method, eid, ErrGraph, err)
	}
	b.stats.Entries++

	return nil
}

// vertexLookup is implemented by graphs that can report existing ids, such
// as *core.Graph[V]. It keeps Stats exact when the graph was prepopulated.
type vertexLookup interface {
	HasVertex(id int) bool
}

// vertex returns the vertex for id, creating and registering it on first use.
// created is false when id was already known, to the index table or to the
// graph itself.
func (b *builder[V]) vertex(id int) (v V, created bool, err error) {
	if v, ok := b.index[id]; ok {
		return v, false, nil
	}

	var zero V
	v, err = b.newVertex()
	if err != nil {
		return zero, false, fmt.Errorf("%s: vertex %d: %w: %w", b.method, id, ErrInstantiation, err)
	}
	if isNil(v) {
		return zero, false, fmt.Errorf("%s: vertex %d: factory returned nil: %w", b.method, id, ErrInstantiation)
	}
	v.SetID(id)
	created = true
	if lk, ok := b.g.(vertexLookup); ok && lk.HasVertex(id) {
		created = false
	}
	if err = b.g.AddVertex(v); err != nil {
		return zero, false, fmt.Errorf("%s: vertex %d: %w: %w", b.method, id, ErrGraph, err)
	}
	b.index[id] = v
	if created {
		b.stats.VerticesCreated++
	}

	return v, created, nil
}

func isNil[V core.Vertex](v V) bool {
	if any(v) == nil {
		return true
	}
	if n, ok := any(v).(core.Nilable); ok {
		return n.IsNil()
	}

	return false
}
