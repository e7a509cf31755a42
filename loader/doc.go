// Package loader turns a Matrix Market coordinate file into a weighted
// bipartite graph.
//
// Row r becomes vertex r, column c becomes vertex R+c, and each record
// (r, c, v) becomes one edge between them with weight v. Rows and columns
// without any record still get a vertex unless WithoutIsolatedVertices is set.
//
//	g := core.NewBipartiteGraph[*vertex.VectorVertex]()
//	if err := loader.LoadGraph(g, loader.FactoryOf(vertex.New), "ratings.mtx",
//		loader.WithLogger(logger)); err != nil {
//		// errors.Is(err, loader.ErrIO), loader.ErrInstantiation, ...
//	}
//
// ExportGraph writes a graph built this way back out, and Config carries the
// same knobs as the options in YAML form.
package loader
