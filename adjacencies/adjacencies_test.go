package adjacencies_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zijistark/libck2/adjacencies"
	"github.com/zijistark/libck2/core"
)

const sample = "From;To;Type;Through;Comment\n" +
	"274;312;sea;1328;Rugen-Stralsund strait\n" +
	"151;163;major_river;1421;Danube crossing\n" +
	"-1;-1;;-1\n" +
	"9;12;sea;-1;no water province\n"

func TestParse_Sample(t *testing.T) {
	f, err := adjacencies.Parse("adjacencies.csv", strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 4, f.Len())

	rows := f.Rows()
	require.Equal(t, adjacencies.Adjacency{
		From: 274, To: 312, Through: 1328,
		Type: "sea", Comment: "Rugen-Stralsund strait",
	}, rows[0])
	require.True(t, rows[2].Deleted)
	require.Equal(t, core.NullProvince, rows[3].Through)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"TooFewFields", "From;To;Type;Through;Comment\n274;312\n"},
		{"BadFrom", "From;To;Type;Through;Comment\nabc;312;sea;0\n"},
		{"BadThrough", "From;To;Type;Through;Comment\n274;312;sea;xyz\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := adjacencies.Parse("adjacencies.csv", strings.NewReader(tc.src))
			if !errors.Is(err, adjacencies.ErrBadRow) {
				t.Errorf("Parse error = %v; want ErrBadRow", err)
			}
		})
	}
}

// TestWrite_RoundTrip regenerates the sample byte for byte.
func TestWrite_RoundTrip(t *testing.T) {
	f, err := adjacencies.Parse("adjacencies.csv", strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.Equal(t, sample, buf.String())

	again, err := adjacencies.Parse("adjacencies.csv", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, f.Rows(), again.Rows())
}

func TestAppend(t *testing.T) {
	var f adjacencies.File
	f.Append(adjacencies.Adjacency{From: 1, To: 2, Type: "sea"})
	require.Equal(t, 1, f.Len())
	require.Equal(t, core.ProvID(1), f.Rows()[0].From)
}
