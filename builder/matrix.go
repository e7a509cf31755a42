// SPDX-License-Identifier: MIT
// Package: mmgraph/builder
//
// matrix.go — Complete and RandomSparse rating-matrix generators.
//
// Contract:
//   • rows, cols ≥ 0 (else ErrBadShape); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • Entries are emitted row-major: r asc, then c asc. Indices are 0-based.
//   • Values come from the configured weight distribution.
//
// Complexity:
//   • Time: O(rows·cols) trials.
//   • Space: O(entries).

package builder

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mmgraph/mmio"
)

const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodWrite        = "Write"
)

// Matrix is a generated coordinate matrix.
type Matrix struct {
	Header  mmio.Header
	Entries []mmio.Entry
}

// Complete returns a matrix with an entry in every cell.
func Complete(rows, cols int, opts ...BuilderOption) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("%s: rows=%d cols=%d: %w", methodComplete, rows, cols, ErrBadShape)
	}

	return generate(rows, cols, 1, newBuilderConfig(opts...)), nil
}

// RandomSparse keeps each cell independently with probability p.
func RandomSparse(rows, cols int, p float64, opts ...BuilderOption) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("%s: rows=%d cols=%d: %w", methodRandomSparse, rows, cols, ErrBadShape)
	}
	if !(p >= 0 && p <= 1) {
		return Matrix{}, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
	}

	return generate(rows, cols, p, newBuilderConfig(opts...)), nil
}

func generate(rows, cols int, p float64, cfg builderConfig) Matrix {
	src := cfg.source()
	keep := distuv.Bernoulli{P: p, Src: src}
	weight := cfg.weight(src)

	var entries []mmio.Entry
	if p == 1 {
		entries = make([]mmio.Entry, 0, rows*cols)
	}
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			if p < 1 && keep.Rand() == 0 {
				continue
			}
			entries = append(entries, mmio.Entry{Row: r, Col: c, Value: weight.Rand()})
		}
	}

	return Matrix{
		Header: mmio.Header{
			Banner:   mmio.DefaultBanner(),
			Comments: cfg.comments,
			Rows:     rows,
			Cols:     cols,
			Entries:  len(entries),
		},
		Entries: entries,
	}
}

// Write encodes m as a Matrix Market coordinate file.
func (m Matrix) Write(w io.Writer) error {
	mw := mmio.NewWriter(w)
	if err := mw.WriteHeader(m.Header); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	for _, e := range m.Entries {
		if err := mw.WriteEntry(e); err != nil {
			return fmt.Errorf("%s: %w", methodWrite, err)
		}
	}
	if err := mw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}

	return nil
}
