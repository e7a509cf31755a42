// Package vertex provides VectorVertex, a graph vertex that carries an
// integer ID and a dense gonum vector, and InitFactors, which assigns a
// latent-factor vector to every vertex of a loaded graph.
//
// Typical flow:
//
//	g := core.NewBipartiteGraph[*vertex.VectorVertex]()
//	err := loader.LoadGraph(g, loader.FactoryOf(vertex.New), "ratings.mtx")
//	err = vertex.InitFactors(g, 10, vertex.WithSeed(42))
package vertex
