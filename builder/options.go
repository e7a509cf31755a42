// SPDX-License-Identifier: MIT
// Package: mmgraph/builder
//
// options.go — builderConfig, deterministic defaults and functional options.
//
// Deterministic defaults (no surprises):
//   • seed     = DefaultSeed
//   • weight   = constant DefaultWeight
//   • comments = none
//
// AI-Hints:
//   • The same seed and options always yield the same matrix.
//   • Edge trials and weight draws share one PCG source, so changing the weight
//     distribution also changes which cells a RandomSparse matrix keeps.

package builder

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Defaults.
const (
	DefaultSeed   = uint64(1)
	DefaultWeight = 1.0

	pcgStream = uint64(0xda3e39cb94b95bdb)
)

// WeightDist builds a weight distribution over a random source.
type WeightDist func(src rand.Source) distuv.Rander

// builderConfig aggregates all knobs used by generators.
type builderConfig struct {
	seed     uint64
	weight   WeightDist
	comments []string
}

// BuilderOption customizes a generator.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		seed:   DefaultSeed,
		weight: constant(DefaultWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns a fresh PCG source for cfg.seed.
func (c builderConfig) source() rand.Source {
	return rand.NewPCG(c.seed, pcgStream)
}

// constRander always yields v.
type constRander float64

func (c constRander) Rand() float64 { return float64(c) }

func constant(v float64) WeightDist {
	return func(rand.Source) distuv.Rander { return constRander(v) }
}

func mustFinite(name string, vals ...float64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("builder: %s: non-finite parameter %v", name, v))
		}
	}
}

// WithSeed seeds the random source.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.seed = seed }
}

// WithComment adds a comment line to the generated header.
func WithComment(text string) BuilderOption {
	return func(c *builderConfig) { c.comments = append(c.comments, text) }
}

// WithWeightDist installs a custom weight distribution. Panics on nil.
func WithWeightDist(d WeightDist) BuilderOption {
	if d == nil {
		panic("builder: WithWeightDist(nil)")
	}

	return func(c *builderConfig) { c.weight = d }
}

// WithConstantWeight gives every entry the value w. Panics if w is not finite.
func WithConstantWeight(w float64) BuilderOption {
	mustFinite("WithConstantWeight", w)

	return WithWeightDist(constant(w))
}

// WithUniformWeight draws values from U[min,max). Panics if max < min.
func WithUniformWeight(min, max float64) BuilderOption {
	mustFinite("WithUniformWeight", min, max)
	if max < min {
		panic(fmt.Sprintf("builder: WithUniformWeight: max=%g < min=%g", max, min))
	}

	return WithWeightDist(func(src rand.Source) distuv.Rander {
		return distuv.Uniform{Min: min, Max: max, Src: src}
	})
}

// WithNormalWeight draws values from N(mu, sigma). Panics if sigma < 0.
func WithNormalWeight(mu, sigma float64) BuilderOption {
	mustFinite("WithNormalWeight", mu, sigma)
	if sigma < 0 {
		panic(fmt.Sprintf("builder: WithNormalWeight: sigma=%g < 0", sigma))
	}

	return WithWeightDist(func(src rand.Source) distuv.Rander {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	})
}

// WithExponentialWeight draws values from Exp(rate). Panics if rate <= 0.
func WithExponentialWeight(rate float64) BuilderOption {
	mustFinite("WithExponentialWeight", rate)
	if rate <= 0 {
		panic(fmt.Sprintf("builder: WithExponentialWeight: rate=%g <= 0", rate))
	}

	return WithWeightDist(func(src rand.Source) distuv.Rander {
		return distuv.Exponential{Rate: rate, Src: src}
	})
}
