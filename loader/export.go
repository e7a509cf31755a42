// SPDX-License-Identifier: MIT
// Package: mmgraph/loader
//
// export.go — ExportGraph, the inverse of LoadGraph.
//
// Every edge between a row id (< rows) and a column id (in [rows, rows+cols))
// is written as one coordinate record, in edge creation order, so
// LoadGraph(ExportGraph(g)) rebuilds an equal graph.

package loader

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mmgraph/core"
	"github.com/katalvlaran/mmgraph/mmio"
)

const methodExportGraph = "ExportGraph"

// ExportGraph writes g to w as a "matrix coordinate real general" file with
// the given dimensions.
//
// Errors:
//   - ErrInvalidArgument: nil g or w, negative dimensions.
//   - ErrGraph: an edge does not join a row to a column.
//   - ErrIO: the writer failed.
func ExportGraph[V core.Vertex](g *core.Graph[V], rows, cols int, w io.Writer) error {
	if g == nil || w == nil {
		return fmt.Errorf("%s: nil graph or writer: %w", methodExportGraph, ErrInvalidArgument)
	}
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%s: rows=%d cols=%d: %w", methodExportGraph, rows, cols, ErrInvalidArgument)
	}

	edges := g.Edges()
	entries := make([]mmio.Entry, 0, len(edges))
	for _, e := range edges {
		row, col := e.From, e.To
		if row >= rows && col < rows {
			row, col = col, row
		}
		if row < 0 || row >= rows || col < rows || col >= rows+cols {
			return fmt.Errorf("%s: edge %s (%d-%d) is not row-column: %w",
				methodExportGraph, e.ID, e.From, e.To, ErrGraph)
		}
		entries = append(entries, mmio.Entry{Row: row, Col: col - rows, Value: e.Weight})
	}

	mw := mmio.NewWriter(w)
	if err := mw.WriteHeader(mmio.Header{Rows: rows, Cols: cols, Entries: len(entries)}); err != nil {
		return fmt.Errorf("%s: %w: %w", methodExportGraph, ErrIO, err)
	}
	for _, e := range entries {
		if err := mw.WriteEntry(e); err != nil {
			return fmt.Errorf("%s: %w: %w", methodExportGraph, ErrIO, err)
		}
	}
	if err := mw.Flush(); err != nil {
		return fmt.Errorf("%s: %w: %w", methodExportGraph, ErrIO, err)
	}

	return nil
}
