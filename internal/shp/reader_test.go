package shp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lotworks/shp2geojson/internal/geo"

	"github.com/stretchr/testify/require"
)

func writePair(t *testing.T, dir, name string, shpData, dbfData []byte) string {
	t.Helper()

	shpPath := filepath.Join(dir, name+".shp")
	require.NoError(t, os.WriteFile(shpPath, shpData, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".dbf"), dbfData, 0644))

	return shpPath
}

func TestOpen_PairsShapesWithRows(t *testing.T) {
	fields := []Field{
		{Name: "LOT_ID", Type: 'N', Length: 4},
		{Name: "OWNER", Type: 'C', Length: 10},
	}
	shpData := buildSHP(pointContent(1, 2), pointContent(3, 4))
	dbfData := buildDBF(fields, [][]string{
		{" ", "1", "first"},
		{" ", "2", "second"},
	})

	path := writePair(t, t.TempDir(), "lots", shpData, dbfData)

	r, err := Open(path)

	require.NoError(t, err)
	require.Equal(t, []string{"LOT_ID", "OWNER"}, r.Fields)
	require.Equal(t, 2, r.Len())

	rec, row := r.Record(1)
	require.Equal(t, geo.ShapePoint, rec.Type)
	require.Equal(t, [][]float64{{3, 4}}, rec.Points)
	require.Equal(t, []any{int64(2), "second"}, row)
}

func TestOpen_CountMismatch(t *testing.T) {
	fields := []Field{{Name: "ID", Type: 'N', Length: 4}}
	shpData := buildSHP(pointContent(1, 2), pointContent(3, 4))
	dbfData := buildDBF(fields, [][]string{{" ", "1"}})

	path := writePair(t, t.TempDir(), "lots", shpData, dbfData)

	_, err := Open(path)
	require.ErrorContains(t, err, "pair mismatch")
}

func TestOpen_MissingGeometryFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.shp"))
	require.ErrorContains(t, err, "read geometry")
}

func TestOpen_MissingAttributeTable(t *testing.T) {
	dir := t.TempDir()
	shpPath := filepath.Join(dir, "lots.shp")
	require.NoError(t, os.WriteFile(shpPath, buildSHP(pointContent(1, 2)), 0644))

	_, err := Open(shpPath)
	require.ErrorContains(t, err, "read attributes")
}
