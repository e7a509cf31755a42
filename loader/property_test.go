// SPDX-License-Identifier: MIT
package loader_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmgraph/builder"
	"github.com/katalvlaran/mmgraph/loader"
)

// TestLoadGraph_RandomMatrices checks the row/column mapping on generated input.
func TestLoadGraph_RandomMatrices(t *testing.T) {
	shapes := []struct{ rows, cols int }{{1, 1}, {4, 9}, {12, 3}, {7, 7}}
	for i, sh := range shapes {
		t.Run(fmt.Sprintf("%dx%d", sh.rows, sh.cols), func(t *testing.T) {
			m, err := builder.RandomSparse(sh.rows, sh.cols, 0.35,
				builder.WithSeed(uint64(i+1)), builder.WithNormalWeight(3, 1))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, m.Write(&buf))
			path := filepath.Join(t.TempDir(), "gen.mtx")
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

			g := newGraph()
			require.NoError(t, loader.LoadGraph(g, newVertex, path))

			ids := g.Vertices()
			require.Len(t, ids, sh.rows+sh.cols)
			for want, id := range ids {
				require.Equal(t, want, id)
			}

			got := triples(g)
			require.Len(t, got, len(m.Entries))
			for k, e := range m.Entries {
				require.Equal(t, edgeTriple{e.Row, sh.rows + e.Col, e.Value}, got[k])
				require.Less(t, got[k].From, sh.rows)
				require.GreaterOrEqual(t, got[k].To, sh.rows)
			}

			var out bytes.Buffer
			require.NoError(t, loader.ExportGraph(g, sh.rows, sh.cols, &out))
			require.Equal(t, buf.String(), out.String())
		})
	}
}

func BenchmarkLoadGraphFromReader(b *testing.B) {
	m, err := builder.RandomSparse(500, 200, 0.05, builder.WithUniformWeight(1, 5))
	require.NoError(b, err)
	var buf bytes.Buffer
	require.NoError(b, m.Write(&buf))
	data := buf.Bytes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := newGraph()
		if err := loader.LoadGraphFromReader(g, newVertex, bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
