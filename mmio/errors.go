// SPDX-License-Identifier: MIT
// Package: mmgraph/mmio
//
// errors.go — sentinel errors for the mmio package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, line number, offending token) is attached with %w.

package mmio

import (
	"errors"
	"fmt"
)

// ErrBadBanner indicates the first line is not a "%%MatrixMarket …" banner
// with exactly four qualifiers.
var ErrBadBanner = errors.New("mmio: malformed banner")

// ErrUnsupported indicates a well-formed banner describing a variant this
// package does not read (array layout, complex/pattern/integer field,
// symmetric/skew/hermitian structure, non-matrix object).
var ErrUnsupported = errors.New("mmio: unsupported matrix variant")

// ErrBadSize indicates a missing or malformed "rows cols entries" size line,
// including one whose rows+cols overflows int.
var ErrBadSize = errors.New("mmio: malformed size line")

// ErrBadEntry indicates a coordinate line that is not "row col value".
var ErrBadEntry = errors.New("mmio: malformed entry")

// ErrIndexOutOfRange indicates a coordinate outside the declared dimensions.
var ErrIndexOutOfRange = errors.New("mmio: index out of range")

// ErrTruncated indicates the input ended before all declared entries were read.
var ErrTruncated = errors.New("mmio: unexpected end of input")

// ErrHeaderState indicates ReadHeader/ReadEntry (or WriteHeader/WriteEntry)
// were called out of order.
var ErrHeaderState = errors.New("mmio: header not processed")

// lineErrorf wraps err with the method name and the 1-based line number.
func lineErrorf(method string, line int, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: line %d: %s: %w", method, line, fmt.Sprintf(format, args...), err)
}
