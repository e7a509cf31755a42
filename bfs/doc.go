// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// Edge weights are ignored: a rating of -3.5 links a user and an item as
// firmly as a rating of 5.
//
// Options:
//
//	WithContext(ctx)         cancel a long walk
//	WithOnVisit(fn)          hook per dequeued vertex; an error aborts the walk
//	WithMaxDepth(n)          stop expanding past n hops (negative is rejected)
//	WithFilterNeighbor(fn)   skip neighbors for which fn returns false
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
