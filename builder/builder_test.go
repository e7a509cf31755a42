// SPDX-License-Identifier: MIT
package builder_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmgraph/builder"
	"github.com/katalvlaran/mmgraph/mmio"
)

func TestComplete_RowMajor(t *testing.T) {
	m, err := builder.Complete(2, 3, builder.WithConstantWeight(2.5))
	require.NoError(t, err)
	require.Equal(t, 6, m.Header.Entries)
	require.Len(t, m.Entries, 6)

	want := []mmio.Entry{
		{0, 0, 2.5}, {0, 1, 2.5}, {0, 2, 2.5},
		{1, 0, 2.5}, {1, 1, 2.5}, {1, 2, 2.5},
	}
	require.Equal(t, want, m.Entries)
}

func TestComplete_Empty(t *testing.T) {
	m, err := builder.Complete(0, 4)
	require.NoError(t, err)
	require.Zero(t, m.Header.Entries)
	require.Empty(t, m.Entries)
}

func TestRandomSparse_Extremes(t *testing.T) {
	none, err := builder.RandomSparse(5, 5, 0)
	require.NoError(t, err)
	require.Empty(t, none.Entries)

	all, err := builder.RandomSparse(3, 4, 1)
	require.NoError(t, err)
	require.Len(t, all.Entries, 12)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(1, 5)}
	a, err := builder.RandomSparse(20, 10, 0.3, opts...)
	require.NoError(t, err)
	b, err := builder.RandomSparse(20, 10, 0.3, opts...)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.NotEmpty(t, a.Entries)

	for _, e := range a.Entries {
		require.GreaterOrEqual(t, e.Value, 1.0)
		require.Less(t, e.Value, 5.0)
		require.True(t, e.Row >= 0 && e.Row < 20)
		require.True(t, e.Col >= 0 && e.Col < 10)
	}
}

func TestRandomSparse_WeightDistributions(t *testing.T) {
	m, err := builder.RandomSparse(10, 10, 0.5, builder.WithNormalWeight(3, 0))
	require.NoError(t, err)
	for _, e := range m.Entries {
		require.Equal(t, 3.0, e.Value, "sigma 0 collapses to the mean")
	}

	m, err = builder.RandomSparse(10, 10, 0.5, builder.WithExponentialWeight(2))
	require.NoError(t, err)
	for _, e := range m.Entries {
		require.GreaterOrEqual(t, e.Value, 0.0)
		require.False(t, math.IsInf(e.Value, 0))
	}
}

func TestGenerators_Errors(t *testing.T) {
	_, err := builder.Complete(-1, 1)
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.RandomSparse(1, -1, 0.5)
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.RandomSparse(1, 1, 1.5)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomSparse(1, 1, math.NaN())
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	require.Panics(t, func() { builder.WithUniformWeight(2, 1) })
	require.Panics(t, func() { builder.WithNormalWeight(0, -1) })
	require.Panics(t, func() { builder.WithExponentialWeight(0) })
	require.Panics(t, func() { builder.WithConstantWeight(math.Inf(1)) })
	require.Panics(t, func() { builder.WithWeightDist(nil) })
}

func TestMatrix_WriteReadBack(t *testing.T) {
	m, err := builder.RandomSparse(6, 4, 0.4, builder.WithSeed(3),
		builder.WithUniformWeight(-1, 1), builder.WithComment(" synthetic"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))

	rd := mmio.NewReader(&buf)
	h, err := rd.ReadHeader()
	require.NoError(t, err)
	require.Equal(t, m.Header, h)

	var got []mmio.Entry
	for {
		e, err := rd.ReadEntry()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, e)
	}
	require.Equal(t, m.Entries, got)
}
