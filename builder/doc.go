// Package builder generates synthetic rating matrices in the coordinate
// layout read by mmio and loader: fully observed (Complete) or sparse with an
// independent keep-probability per cell (RandomSparse).
//
// Values are drawn from gonum distributions over a seeded PCG source, so the
// same seed and options always produce the same matrix:
//
//	m, err := builder.RandomSparse(100, 40, 0.05,
//		builder.WithSeed(7), builder.WithUniformWeight(1, 5))
//	err = m.Write(f)
package builder
