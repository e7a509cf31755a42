// SPDX-License-Identifier: MIT
// Package: mmgraph/mmio
//
// writer.go — coordinate-format writer (1-based indices, shortest round-trip values).

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

const (
	methodWriteHeader = "WriteHeader"
	methodWriteEntry  = "WriteEntry"
)

// Writer encodes a coordinate file. Call WriteHeader once, then WriteEntry
// Header.Entries times, then Flush.
type Writer struct {
	bw      *bufio.Writer
	header  *Header
	written int
	buf     []byte
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteHeader writes the banner, comments and size line. A zero Banner is
// replaced by DefaultBanner; any other banner must pass Validate.
func (w *Writer) WriteHeader(h Header) error {
	if w.header != nil {
		return fmt.Errorf("%s: %w", methodWriteHeader, ErrHeaderState)
	}
	if h.Banner == (Banner{}) {
		h.Banner = DefaultBanner()
	}
	if err := h.Banner.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteHeader, err)
	}
	if h.Rows < 0 || h.Cols < 0 || h.Entries < 0 {
		return fmt.Errorf("%s: %d %d %d: %w", methodWriteHeader, h.Rows, h.Cols, h.Entries, ErrBadSize)
	}

	if _, err := fmt.Fprintln(w.bw, h.Banner.String()); err != nil {
		return fmt.Errorf("%s: %w", methodWriteHeader, err)
	}
	for _, c := range h.Comments {
		if _, err := fmt.Fprintf(w.bw, "%s%s\n", commentPrefix, c); err != nil {
			return fmt.Errorf("%s: %w", methodWriteHeader, err)
		}
	}
	if _, err := fmt.Fprintf(w.bw, "%d %d %d\n", h.Rows, h.Cols, h.Entries); err != nil {
		return fmt.Errorf("%s: %w", methodWriteHeader, err)
	}
	w.header = &h

	return nil
}

// WriteEntry writes one 0-based entry as a 1-based line.
//
// Errors: ErrHeaderState (no header, or more entries than declared),
// ErrIndexOutOfRange, ErrBadEntry (non-finite value).
func (w *Writer) WriteEntry(e Entry) error {
	if w.header == nil {
		return fmt.Errorf("%s: call WriteHeader first: %w", methodWriteEntry, ErrHeaderState)
	}
	if w.written >= w.header.Entries {
		return fmt.Errorf("%s: %d entries declared: %w", methodWriteEntry, w.header.Entries, ErrHeaderState)
	}
	if e.Row < 0 || e.Row >= w.header.Rows || e.Col < 0 || e.Col >= w.header.Cols {
		return fmt.Errorf("%s: (%d,%d): %w", methodWriteEntry, e.Row, e.Col, ErrIndexOutOfRange)
	}
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return fmt.Errorf("%s: value %v: %w", methodWriteEntry, e.Value, ErrBadEntry)
	}

	w.buf = w.buf[:0]
	w.buf = strconv.AppendInt(w.buf, int64(e.Row+OneBased), 10)
	w.buf = append(w.buf, ' ')
	w.buf = strconv.AppendInt(w.buf, int64(e.Col+OneBased), 10)
	w.buf = append(w.buf, ' ')
	w.buf = strconv.AppendFloat(w.buf, e.Value, 'g', -1, 64)
	w.buf = append(w.buf, '\n')
	if _, err := w.bw.Write(w.buf); err != nil {
		return fmt.Errorf("%s: %w", methodWriteEntry, err)
	}
	w.written++

	return nil
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
