package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/mmgraph/core"
)

type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V core.Vertex] struct {
	graph   *core.Graph[V]
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or any OnVisit error.
func BFS[V core.Vertex](g *core.Graph[V], startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := newWalker(g, o, make(map[int]bool, n), n)
	w.enqueue(startID, 0, startID)

	return w.res, w.loop()
}

// newWalker sizes the queue and result buffers by hint. visited may be
// shared between walks so that vertices claimed earlier are skipped.
func newWalker[V core.Vertex](g *core.Graph[V], o Options, visited map[int]bool, hint int) *walker[V] {
	return &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, hint),
		visited: visited,
		res: &Result{
			Order:  make([]int, 0, hint),
			Depth:  make(map[int]int, hint),
			Parent: make(map[int]int, hint),
		},
	}
}

func (w *walker[V]) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker[V]) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %w", ErrNeighbors, item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}

// Components partitions the vertices of g into connected components. Each
// component is sorted ascending, and components are ordered by their
// smallest id. Isolated vertices form singleton components.
//
// One visited set spans all walks, so the cost is O(V + E) however many
// components there are.
func Components[V core.Vertex](ctx context.Context, g *core.Graph[V]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	WithContext(ctx)(&o)

	visited := make(map[int]bool, g.VertexCount())
	var out [][]int
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		w := newWalker(g, o, visited, 0)
		w.enqueue(id, 0, id)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := w.res.Order
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}
