// SPDX-License-Identifier: MIT
// Package loader_test contains fixtures shared by the loader tests.

package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmgraph/core"
	"github.com/katalvlaran/mmgraph/loader"
	"github.com/katalvlaran/mmgraph/vertex"
)

const banner = "%%MatrixMarket matrix coordinate real general\n"

// scenario is the 3×2 matrix with entries (1,1)=5 and (2,2)=-3.5.
const scenario = banner + "% ratings\n3 2 2\n1 1 5.0\n2 2 -3.5\n"

// writeMatrix stores body in a fresh temp file and returns its path.
func writeMatrix(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.mtx")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func newGraph() *core.Graph[*vertex.VectorVertex] {
	return core.NewBipartiteGraph[*vertex.VectorVertex]()
}

var newVertex = loader.FactoryOf(vertex.New)

// edgeTriple is a payload-free edge view.
type edgeTriple struct {
	From, To int
	Weight   float64
}

func triples(g *core.Graph[*vertex.VectorVertex]) []edgeTriple {
	edges := g.Edges()
	out := make([]edgeTriple, 0, len(edges))
	for _, e := range edges {
		out = append(out, edgeTriple{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}

// failingReader returns err on every Read.
type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }
