// SPDX-License-Identifier: MIT
// Package: mmgraph/mmio
//
// reader.go — sequential coordinate-format reader.
//
// Contract:
//   • ReadHeader must be called once, first. It consumes the banner, any "%"
//     comment lines and blank lines, and the "rows cols entries" size line.
//   • ReadEntry returns exactly Header.Entries entries, then io.EOF. Lines
//     after the last declared entry are never read.
//   • Entry indices are returned 0-based regardless of the file's index base.
//   • Errors carry the 1-based line number; underlying read errors are wrapped.
//
// Complexity:
//   • O(1) extra space per call; O(total bytes) time over a full pass.

package mmio

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	methodReadHeader = "ReadHeader"
	methodReadEntry  = "ReadEntry"

	commentPrefix = "%"

	// maxLineBytes bounds a single line; comment lines in the wild can be long.
	maxLineBytes = 1 << 20
)

// Header is everything before the first entry.
type Header struct {
	Banner   Banner
	Comments []string // comment lines without the leading '%'
	Rows     int
	Cols     int
	Entries  int
}

// Vertices returns Rows+Cols: the size of the combined bipartite ID space.
func (h Header) Vertices() int { return h.Rows + h.Cols }

// Entry is one coordinate record with 0-based indices.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// Reader decodes a coordinate file from an io.Reader.
type Reader struct {
	sc     *bufio.Scanner
	cfg    readerConfig
	line   int
	header *Header
	read   int
}

// NewReader returns a Reader over r. It does no I/O until ReadHeader.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &Reader{sc: sc, cfg: newReaderConfig(opts...)}
}

// ReadHeader reads and validates the banner and the size line.
//
// Errors:
//   - ErrBadBanner, ErrUnsupported: first line.
//   - ErrBadSize: size line malformed or negative.
//   - ErrTruncated: input ends before the size line.
//   - ErrHeaderState: called twice.
func (r *Reader) ReadHeader() (Header, error) {
	if r.header != nil {
		return Header{}, lineErrorf(methodReadHeader, r.line, ErrHeaderState, "header already read")
	}

	first, ok, err := r.next()
	if err != nil {
		return Header{}, err
	}
	if !ok {
		return Header{}, lineErrorf(methodReadHeader, r.line, ErrTruncated, "empty input")
	}
	banner, err := ParseBanner(first)
	if err != nil {
		return Header{}, lineErrorf(methodReadHeader, r.line, err, "banner")
	}
	if err = banner.Validate(); err != nil {
		return Header{}, lineErrorf(methodReadHeader, r.line, err, "banner")
	}

	h := Header{Banner: banner}
	var text string
	for {
		text, ok, err = r.next()
		if err != nil {
			return Header{}, err
		}
		if !ok {
			return Header{}, lineErrorf(methodReadHeader, r.line, ErrTruncated, "missing size line")
		}
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, commentPrefix) {
			h.Comments = append(h.Comments, strings.TrimPrefix(trimmed, commentPrefix))
			continue
		}
		break
	}

	dims, err := parseSize(text)
	if err != nil {
		return Header{}, lineErrorf(methodReadHeader, r.line, err, "%q", text)
	}
	h.Rows, h.Cols, h.Entries = dims[0], dims[1], dims[2]
	r.header = &h

	return h, nil
}

// ReadEntry returns the next coordinate record, or io.EOF once all declared
// entries were returned.
//
// Errors:
//   - ErrHeaderState: ReadHeader was not called.
//   - ErrBadEntry: not "row col value", non-integer index, value not in decimal or scientific notation, or non-finite.
//   - ErrIndexOutOfRange: index outside the declared dimensions.
//   - ErrTruncated: input ended early.
func (r *Reader) ReadEntry() (Entry, error) {
	if r.header == nil {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrHeaderState, "call ReadHeader first")
	}
	if r.read >= r.header.Entries {
		return Entry{}, io.EOF
	}

	var text string
	var ok bool
	var err error
	for {
		text, ok, err = r.next()
		if err != nil {
			return Entry{}, err
		}
		if !ok {
			return Entry{}, lineErrorf(methodReadEntry, r.line, ErrTruncated,
				"read %d of %d entries", r.read, r.header.Entries)
		}
		trimmed := strings.TrimSpace(text)
		if trimmed != "" && !strings.HasPrefix(trimmed, commentPrefix) {
			break
		}
	}

	e, err := r.parseEntry(text)
	if err != nil {
		return Entry{}, err
	}
	r.read++

	return e, nil
}

// Remaining returns how many declared entries are still unread.
func (r *Reader) Remaining() int {
	if r.header == nil {
		return 0
	}

	return r.header.Entries - r.read
}

// Line returns the 1-based number of the last line consumed.
func (r *Reader) Line() int { return r.line }

// next returns the next raw line; ok=false at clean end of input.
func (r *Reader) next() (string, bool, error) {
	if r.sc.Scan() {
		r.line++
		return r.sc.Text(), true, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", false, lineErrorf("read", r.line+1, err, "scan")
	}

	return "", false, nil
}

// parseEntry decodes "row col value" and converts to 0-based indices.
func (r *Reader) parseEntry(text string) (Entry, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrBadEntry,
			"want 3 fields, got %d", len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrBadEntry, "row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrBadEntry, "col %q", fields[1])
	}
	if !isDecimal(fields[2]) {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrBadEntry, "value %q", fields[2])
	}
	val, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || math.IsInf(val, 0) {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrBadEntry, "value %q", fields[2])
	}

	row -= r.cfg.indexBase
	col -= r.cfg.indexBase
	if row < 0 || row >= r.header.Rows {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrIndexOutOfRange,
			"row %s not in %d-based [%d,%d]", fields[0], r.cfg.indexBase,
			r.cfg.indexBase, r.header.Rows-1+r.cfg.indexBase)
	}
	if col < 0 || col >= r.header.Cols {
		return Entry{}, lineErrorf(methodReadEntry, r.line, ErrIndexOutOfRange,
			"col %s not in %d-based [%d,%d]", fields[1], r.cfg.indexBase,
			r.cfg.indexBase, r.header.Cols-1+r.cfg.indexBase)
	}

	return Entry{Row: row, Col: col, Value: val}, nil
}

// isDecimal reports whether s uses only decimal or scientific notation.
// strconv.ParseFloat also takes hex floats, underscores, "Inf" and "NaN".
func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return false
		}
	}

	return s != ""
}

// parseSize decodes "rows cols entries" into three non-negative ints whose
// rows+cols vertex count fits in an int.
func parseSize(text string) ([3]int, error) {
	var out [3]int
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return out, ErrBadSize
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return out, ErrBadSize
		}
		out[i] = n
	}
	if out[0] > math.MaxInt-out[1] {
		return out, ErrBadSize
	}

	return out, nil
}
