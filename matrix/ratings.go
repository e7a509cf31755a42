// SPDX-License-Identifier: MIT
// Package: mmgraph/matrix
//
// ratings.go — dense rating-matrix view of a loaded bipartite graph.
//
// Layout (same as loader): vertex r < rows is row r, vertex rows+c is column c.
//
// Contract:
//   • Values holds the folded edge weights; unobserved cells are 0.
//   • Observed is a 0/1 mask, so a stored 0 rating stays distinguishable.
//   • Edges are folded in creation order (stable), per DuplicatePolicy.
//   • Vertices without edges only contribute empty rows/columns.
//
// Complexity:
//   • Time: O(rows·cols + E log E).
//   • Space: O(rows·cols).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mmgraph/core"
)

const (
	methodNewRatingMatrix = "NewRatingMatrix"
	methodAt              = "At"
)

// RatingMatrix is a dense rows×cols view of a bipartite rating graph.
type RatingMatrix struct {
	Values   *mat.Dense
	Observed *mat.Dense
	count    int
}

// NewRatingMatrix folds the row-column edges of g into a dense matrix.
//
// Errors: ErrGraphNil, ErrInvalidDimensions, ErrNotBipartite.
func NewRatingMatrix[V core.Vertex](g *core.Graph[V], rows, cols int, opts ...Option) (*RatingMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodNewRatingMatrix, ErrGraphNil)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", methodNewRatingMatrix, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	rm := &RatingMatrix{
		Values:   mat.NewDense(rows, cols, nil),
		Observed: mat.NewDense(rows, cols, nil),
	}
	for _, e := range g.Edges() {
		r, c := e.From, e.To
		if r >= rows && c < rows {
			r, c = c, r
		}
		if r < 0 || r >= rows || c < rows || c >= rows+cols {
			return nil, fmt.Errorf("%s: edge %s (%d-%d): %w", methodNewRatingMatrix, e.ID, e.From, e.To, ErrNotBipartite)
		}
		c -= rows

		seen := rm.Observed.At(r, c) == 1
		switch {
		case !seen:
			rm.Values.Set(r, c, e.Weight)
			rm.Observed.Set(r, c, 1)
			rm.count++
		case o.duplicates == DuplicateSum:
			rm.Values.Set(r, c, rm.Values.At(r, c)+e.Weight)
		default:
			rm.Values.Set(r, c, e.Weight)
		}
	}

	return rm, nil
}

// Dims returns rows and cols.
func (m *RatingMatrix) Dims() (rows, cols int) { return m.Values.Dims() }

// At returns the value at (r, c) and whether that cell was observed.
func (m *RatingMatrix) At(r, c int) (float64, bool, error) {
	rows, cols := m.Dims()
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return 0, false, fmt.Errorf("%s: (%d,%d): %w", methodAt, r, c, ErrOutOfRange)
	}

	return m.Values.At(r, c), m.Observed.At(r, c) == 1, nil
}

// Count returns the number of observed cells.
func (m *RatingMatrix) Count() int { return m.count }

// Density returns observed cells / all cells.
func (m *RatingMatrix) Density() float64 {
	rows, cols := m.Dims()

	return float64(m.count) / float64(rows*cols)
}

// MeanStdDev returns the mean and sample standard deviation of the observed
// values. The mean is NaN with no observations; the deviation is NaN with
// fewer than two.
func (m *RatingMatrix) MeanStdDev() (mean, std float64) {
	vals := make([]float64, 0, m.count)
	rows, cols := m.Dims()
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			if m.Observed.At(r, c) == 1 {
				vals = append(vals, m.Values.At(r, c))
			}
		}
	}

	return stat.MeanStdDev(vals, nil)
}
