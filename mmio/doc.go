// Package mmio reads and writes sparse matrices in the Matrix Market
// coordinate text format:
//
//	%%MatrixMarket matrix coordinate real general
//	% optional comment lines
//	3 2 2          <- rows cols entries
//	1 1 5.0        <- row col value, 1-based
//	2 2 -3.5e0
//
// Only the "matrix coordinate real general" variant is accepted; array
// layouts, complex/pattern/integer fields and symmetric structures fail with
// ErrUnsupported. Symmetry is never validated or expanded.
//
// Reader returns 0-based Entry values one at a time; Writer emits the
// 1-based form. All errors are sentinels checked with errors.Is.
package mmio
