// SPDX-License-Identifier: MIT
// Package: mmgraph/vertex
//
// factors.go — latent-factor initialisation for a loaded graph.
//
// Contract:
//   • Every vertex gets its own freshly allocated vector of length dim.
//   • Random mode draws each component from Uniform(0, scale) with a seeded
//     PCG source; the same seed over the same vertex set gives the same vectors.
//   • Constant mode fills every component with scale.
//   • Vertices are visited in ascending ID order.

package vertex

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mmgraph/core"
)

const methodInitFactors = "InitFactors"

// Defaults for InitFactors.
const (
	DefaultScale = 0.1
	DefaultSeed  = uint64(1)

	// pcgStream is the fixed second word of the PCG state.
	pcgStream = uint64(0x9e3779b97f4a7c15)
)

// ErrBadDimension indicates a non-positive factor dimension.
var ErrBadDimension = errors.New("vertex: factor dimension must be positive")

// ErrNilGraph indicates InitFactors was called with a nil graph.
var ErrNilGraph = errors.New("vertex: graph is nil")

// Vectored is a graph vertex that can hold a dense vector.
type Vectored interface {
	core.Vertex
	SetVector(vec *mat.VecDense)
}

type factorConfig struct {
	scale    float64
	seed     uint64
	constant bool
}

// FactorOption customizes InitFactors.
type FactorOption func(*factorConfig)

// WithScale sets the upper bound of the uniform draw (or the constant value).
// Panics unless scale is finite and > 0.
func WithScale(scale float64) FactorOption {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic("vertex: WithScale(scale) must be finite and > 0")
	}

	return func(c *factorConfig) { c.scale = scale }
}

// WithSeed seeds the random source.
func WithSeed(seed uint64) FactorOption {
	return func(c *factorConfig) { c.seed = seed }
}

// WithConstant fills vectors with the scale value instead of random draws.
// Useful to make factor-based computations reproducible in debugging.
func WithConstant() FactorOption {
	return func(c *factorConfig) { c.constant = true }
}

// InitFactors assigns a dim-length latent-factor vector to every vertex of g.
//
// Errors:
//   - ErrNilGraph, ErrBadDimension.
//   - core.ErrVertexNotFound if a vertex is removed concurrently.
//
// Complexity: O(V log V + V·dim).
func InitFactors[V Vectored](g *core.Graph[V], dim int, opts ...FactorOption) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodInitFactors, ErrNilGraph)
	}
	if dim < 1 {
		return fmt.Errorf("%s: dim=%d: %w", methodInitFactors, dim, ErrBadDimension)
	}

	cfg := factorConfig{scale: DefaultScale, seed: DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	dist := distuv.Uniform{Min: 0, Max: cfg.scale, Src: rand.NewPCG(cfg.seed, pcgStream)}

	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return fmt.Errorf("%s: vertex %d: %w", methodInitFactors, id, err)
		}
		data := make([]float64, dim)
		for i := range data {
			if cfg.constant {
				data[i] = cfg.scale
			} else {
				data[i] = dist.Rand()
			}
		}
		v.SetVector(mat.NewVecDense(dim, data))
	}

	return nil
}
