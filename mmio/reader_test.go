// SPDX-License-Identifier: MIT
package mmio_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmgraph/mmio"
)

const smallMatrix = `%%MatrixMarket matrix coordinate real general
% produced by hand
%
3 2 2
1 1 5.0
2 2 -3.5
`

// readAll drains a reader; it fails the test on any non-EOF error.
func readAll(t *testing.T, r *mmio.Reader) []mmio.Entry {
	t.Helper()
	var out []mmio.Entry
	for {
		e, err := r.ReadEntry()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, e)
	}
}

func TestReader_SmallMatrix(t *testing.T) {
	r := mmio.NewReader(strings.NewReader(smallMatrix))
	h, err := r.ReadHeader()
	require.NoError(t, err)
	require.Equal(t, mmio.DefaultBanner(), h.Banner)
	require.Equal(t, []string{" produced by hand", ""}, h.Comments)
	require.Equal(t, 3, h.Rows)
	require.Equal(t, 2, h.Cols)
	require.Equal(t, 2, h.Entries)
	require.Equal(t, 5, h.Vertices())
	require.Equal(t, 2, r.Remaining())

	entries := readAll(t, r)
	require.Equal(t, []mmio.Entry{
		{Row: 0, Col: 0, Value: 5.0},
		{Row: 1, Col: 1, Value: -3.5},
	}, entries)
	require.Zero(t, r.Remaining())
	require.Equal(t, 6, r.Line())
}

func TestReader_ScientificAndCaseInsensitiveBanner(t *testing.T) {
	in := "%%MatrixMarket MATRIX Coordinate REAL General\n2 2 3\n1 2 1e-3\n2 1 -2.5E+2\n\n2 2 7\n"
	r := mmio.NewReader(strings.NewReader(in))
	_, err := r.ReadHeader()
	require.NoError(t, err)

	entries := readAll(t, r)
	require.Len(t, entries, 3)
	require.InDelta(t, 1e-3, entries[0].Value, 1e-15)
	require.Equal(t, -250.0, entries[1].Value)
	require.Equal(t, mmio.Entry{Row: 1, Col: 1, Value: 7}, entries[2])
}

func TestReader_StopsAfterDeclaredEntries(t *testing.T) {
	in := "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 1\nnot an entry\n"
	r := mmio.NewReader(strings.NewReader(in))
	_, err := r.ReadHeader()
	require.NoError(t, err)
	require.Len(t, readAll(t, r), 1)
}

func TestReader_ZeroBased(t *testing.T) {
	in := "%%MatrixMarket matrix coordinate real general\n2 2 1\n0 1 4\n"
	r := mmio.NewReader(strings.NewReader(in), mmio.WithIndexBase(mmio.ZeroBased))
	_, err := r.ReadHeader()
	require.NoError(t, err)
	require.Equal(t, []mmio.Entry{{Row: 0, Col: 1, Value: 4}}, readAll(t, r))

	require.Panics(t, func() { mmio.WithIndexBase(2) })
}

func TestReader_Errors(t *testing.T) {
	const banner = "%%MatrixMarket matrix coordinate real general\n"
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", mmio.ErrTruncated},
		{"no banner", "3 2 1\n", mmio.ErrBadBanner},
		{"short banner", "%%MatrixMarket matrix coordinate real\n", mmio.ErrBadBanner},
		{"array", "%%MatrixMarket matrix array real general\n", mmio.ErrUnsupported},
		{"complex", "%%MatrixMarket matrix coordinate complex general\n", mmio.ErrUnsupported},
		{"pattern", "%%MatrixMarket matrix coordinate pattern general\n", mmio.ErrUnsupported},
		{"symmetric", "%%MatrixMarket matrix coordinate real symmetric\n", mmio.ErrUnsupported},
		{"vector", "%%MatrixMarket vector coordinate real general\n", mmio.ErrUnsupported},
		{"missing size", banner + "% only comments\n", mmio.ErrTruncated},
		{"bad size", banner + "3 x 1\n", mmio.ErrBadSize},
		{"negative size", banner + "3 -2 1\n", mmio.ErrBadSize},
		{"vertex count overflow", banner + "9223372036854775807 1 0\n", mmio.ErrBadSize},
		{"two fields", banner + "2 2 1\n1 1\n", mmio.ErrBadEntry},
		{"bad row", banner + "2 2 1\na 1 1\n", mmio.ErrBadEntry},
		{"bad value", banner + "2 2 1\n1 1 x\n", mmio.ErrBadEntry},
		{"nan value", banner + "2 2 1\n1 1 NaN\n", mmio.ErrBadEntry},
		{"inf value", banner + "2 2 1\n1 1 1e999\n", mmio.ErrBadEntry},
		{"hex value", banner + "2 2 1\n1 1 0x1p3\n", mmio.ErrBadEntry},
		{"underscore value", banner + "2 2 1\n1 1 1_0\n", mmio.ErrBadEntry},
		{"row zero", banner + "2 2 1\n0 1 1\n", mmio.ErrIndexOutOfRange},
		{"col too big", banner + "2 2 1\n1 3 1\n", mmio.ErrIndexOutOfRange},
		{"truncated", banner + "2 2 2\n1 1 1\n", mmio.ErrTruncated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := mmio.NewReader(strings.NewReader(tc.in))
			_, err := r.ReadHeader()
			for err == nil {
				_, err = r.ReadEntry()
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReader_HeaderState(t *testing.T) {
	r := mmio.NewReader(strings.NewReader(smallMatrix))
	_, err := r.ReadEntry()
	require.ErrorIs(t, err, mmio.ErrHeaderState)

	_, err = r.ReadHeader()
	require.NoError(t, err)
	_, err = r.ReadHeader()
	require.ErrorIs(t, err, mmio.ErrHeaderState)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReader_PropagatesReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := mmio.NewReader(io.MultiReader(
		strings.NewReader("%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1\n"),
		failingReader{boom},
	))
	_, err := r.ReadHeader()
	require.NoError(t, err)
	_, err = r.ReadEntry()
	require.NoError(t, err)
	_, err = r.ReadEntry()
	require.ErrorIs(t, err, boom)
}

func TestWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := mmio.NewWriter(&buf)
	entries := []mmio.Entry{
		{Row: 0, Col: 0, Value: 5},
		{Row: 2, Col: 1, Value: 0.1},
		{Row: 2, Col: 1, Value: -1e-300},
	}
	require.NoError(t, w.WriteHeader(mmio.Header{Rows: 3, Cols: 2, Entries: len(entries), Comments: []string{" roundtrip"}}))
	for _, e := range entries {
		require.NoError(t, w.WriteEntry(e))
	}
	require.ErrorIs(t, w.WriteEntry(entries[0]), mmio.ErrHeaderState)
	require.NoError(t, w.Flush())

	require.True(t, strings.HasPrefix(buf.String(), "%%MatrixMarket matrix coordinate real general\n% roundtrip\n3 2 3\n1 1 5\n"))

	r := mmio.NewReader(&buf)
	h, err := r.ReadHeader()
	require.NoError(t, err)
	require.Equal(t, []string{" roundtrip"}, h.Comments)
	require.Equal(t, entries, readAll(t, r))
}

func TestWriter_Errors(t *testing.T) {
	var buf bytes.Buffer
	w := mmio.NewWriter(&buf)
	require.ErrorIs(t, w.WriteEntry(mmio.Entry{}), mmio.ErrHeaderState)

	bad := mmio.DefaultBanner()
	bad.Field = mmio.FieldPattern
	require.ErrorIs(t, w.WriteHeader(mmio.Header{Banner: bad}), mmio.ErrUnsupported)
	require.ErrorIs(t, w.WriteHeader(mmio.Header{Rows: -1}), mmio.ErrBadSize)

	require.NoError(t, w.WriteHeader(mmio.Header{Rows: 1, Cols: 1, Entries: 2}))
	require.ErrorIs(t, w.WriteHeader(mmio.Header{Rows: 1, Cols: 1}), mmio.ErrHeaderState)
	require.ErrorIs(t, w.WriteEntry(mmio.Entry{Row: 1}), mmio.ErrIndexOutOfRange)
	require.ErrorIs(t, w.WriteEntry(mmio.Entry{Value: math.NaN()}), mmio.ErrBadEntry)
}
