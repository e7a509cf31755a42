// SPDX-License-Identifier: MIT
// Package: mmgraph/loader
//
// options.go — loaderConfig defaults and functional options.
//
// Contract:
//   • Options are functional (type Option func(*loaderConfig)), applied in
//     order; later options override earlier ones.
//   • Option constructors validate and panic on meaningless inputs.
//     LoadGraph itself never panics.
//
// Deterministic defaults:
//   • indexBase = 1        (Matrix Market convention)
//   • isolated  = true     (every ID in [0, rows+cols) gets a vertex)
//   • logger    = zap.NewNop()
//   • stats     = nil      (not collected)

package loader

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/mmgraph/mmio"
)

// loaderConfig aggregates all knobs used by LoadGraph.
type loaderConfig struct {
	indexBase int
	isolated  bool
	logger    *zap.Logger
	stats     *Stats
}

// Option customizes a load.
type Option func(*loaderConfig)

func newLoaderConfig(opts ...Option) loaderConfig {
	cfg := loaderConfig{
		indexBase: mmio.OneBased,
		isolated:  true,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes load diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("loader: WithLogger(nil)")
	}

	return func(c *loaderConfig) { c.logger = l }
}

// WithIndexBase sets the file's index base: 1 (default) or 0.
// Panics on any other value.
func WithIndexBase(base int) Option {
	if base != mmio.ZeroBased && base != mmio.OneBased {
		panic("loader: WithIndexBase(base) must be 0 or 1")
	}

	return func(c *loaderConfig) { c.indexBase = base }
}

// WithoutIsolatedVertices skips the final pass, so only rows and columns
// that appear in at least one entry get a vertex.
func WithoutIsolatedVertices() Option {
	return func(c *loaderConfig) { c.isolated = false }
}

// WithStats fills *s with load counters, including on failure (counts up to
// the failing record). Panics on nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("loader: WithStats(nil)")
	}

	return func(c *loaderConfig) { c.stats = s }
}
