// SPDX-License-Identifier: MIT
// Package: mmgraph/mmio
//
// options.go — functional options for Reader.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     reading itself never panics.

package mmio

// Index bases.
const (
	ZeroBased = 0
	OneBased  = 1
)

// readerConfig aggregates Reader knobs. Defaults: 1-based indices.
type readerConfig struct {
	indexBase int
}

// ReaderOption customizes a Reader.
type ReaderOption func(*readerConfig)

func newReaderConfig(opts ...ReaderOption) readerConfig {
	cfg := readerConfig{indexBase: OneBased}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIndexBase sets the index base of the file (OneBased per the Matrix
// Market convention, ZeroBased for tools that write raw offsets).
// Panics on any other value.
func WithIndexBase(base int) ReaderOption {
	if base != ZeroBased && base != OneBased {
		panic("mmio: WithIndexBase(base) must be 0 or 1")
	}

	return func(c *readerConfig) { c.indexBase = base }
}
