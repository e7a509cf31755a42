// Package mmgraph loads sparse rating matrices stored in the Matrix Market
// coordinate format into an in-memory weighted bipartite graph, ready for
// latent-factor models such as probabilistic matrix factorization.
//
// 🚀 What is in the box?
//
//	• core/   — generic, thread-safe Graph[V] with weighted multi-edges
//	• mmio/   — streaming reader/writer for "matrix coordinate real general"
//	• loader/ — LoadGraph: rows → vertices 0..R-1, columns → R..R+C-1,
//	            one weighted edge per record; YAML profiles, zap logging
//	• vertex/ — VectorVertex (id + gonum vector) and InitFactors
//	• matrix/ — RatingMatrix: gonum dense values + observed mask, mean/stddev
//	• builder/ — seeded synthetic matrices (Complete, RandomSparse)
//	• bfs/    — breadth-first search and connected components
//
// Quick ASCII example (3 users × 2 items, entries (1,1)=5 and (2,2)=-3.5):
//
//	  u0 ──5── i3
//	  u1 ─-3.5─ i4
//	  u2            (isolated)
//
// Typical flow:
//
//	g := core.NewBipartiteGraph[*vertex.VectorVertex]()
//	if err := loader.LoadGraph(g, loader.FactoryOf(vertex.New), "ratings.mtx"); err != nil {
//		return err
//	}
//	err := vertex.InitFactors(g, 10, vertex.WithSeed(42))
//
//	go get github.com/katalvlaran/mmgraph
package mmgraph
