package pathio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/pathio"
	"github.com/katalvlaran/gridroute/route"
)

var lPath = route.Path{
	{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
}

func TestWritePath_ColumnFirst(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pathio.WritePath(&buf, lPath))
	assert.Equal(t, "0,0\n0,1\n0,2\n1,2\n2,2\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pathio.WritePath(&buf, lPath))
	got, err := pathio.ReadPath(&buf)
	require.NoError(t, err)
	assert.Equal(t, lPath, got)
}

func TestWriteWaypoints(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pathio.WriteWaypoints(&buf, lPath))
	assert.Equal(t, "0,0\n0,2\n2,2\n", buf.String())
}

func TestReadPath_Tolerant(t *testing.T) {
	in := "3.0, 1\n\n7\n4,1,extra\n"
	got, err := pathio.ReadPath(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, route.Path{{Row: 1, Col: 3}, {Row: 1, Col: 4}}, got)
}

func TestReadPath_BadRecord(t *testing.T) {
	for _, in := range []string{"a,1\n", "1,2.5\n", "1,Inf\n"} {
		_, err := pathio.ReadPath(strings.NewReader(in))
		require.ErrorIs(t, err, pathio.ErrBadRecord, in)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	pathFile := filepath.Join(dir, "path.csv")
	require.NoError(t, pathio.SavePath(pathFile, lPath))
	got, err := pathio.LoadPath(pathFile)
	require.NoError(t, err)
	assert.Equal(t, lPath, got)

	_, err = pathio.LoadPath(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)

	obsFile := filepath.Join(dir, "obstacles.csv")
	none, err := pathio.LoadObstacles(obsFile)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, pathio.AppendObstacle(obsFile, gridgraph.Cell{Row: 2, Col: 1}))
	require.NoError(t, pathio.AppendObstacle(obsFile, gridgraph.Cell{Row: 0, Col: 3}))
	obs, err := pathio.LoadObstacles(obsFile)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{Row: 2, Col: 1}, {Row: 0, Col: 3}}, obs)
}
