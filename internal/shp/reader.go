package shp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lotworks/shp2geojson/internal/geo"
)

// Reader supplies the decoded shape records and attribute rows of one
// shapefile pair, in file order.
type Reader struct {
	// Fields is the ordered attribute column name list shared by all
	// rows.
	Fields []string

	shapes []geo.ShapeRecord
	rows   [][]any
}

// Open reads the .shp file at path together with its sibling .dbf
// table. Both files are decoded up front; lot-scale shapefiles are
// small and the output document is fully buffered anyway.
func Open(path string) (*Reader, error) {
	shpData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}

	shapes, err := readShapes(shpData)
	if err != nil {
		return nil, err
	}

	dbfPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".dbf"
	dbfData, err := os.ReadFile(dbfPath)
	if err != nil {
		return nil, fmt.Errorf("read attributes: %w", err)
	}

	fields, rows, err := readTable(dbfData)
	if err != nil {
		return nil, err
	}

	// Shape k pairs with attribute row k. A count mismatch means the
	// pair is inconsistent; refusing it beats silently misaligning
	// attributes with the wrong geometry.
	if len(shapes) != len(rows) {
		return nil, fmt.Errorf("shapefile pair mismatch: %d shapes, %d attribute rows", len(shapes), len(rows))
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return &Reader{Fields: names, shapes: shapes, rows: rows}, nil
}

// Len is the number of paired records.
func (r *Reader) Len() int {
	return len(r.shapes)
}

// Record returns shape i and its attribute row.
func (r *Reader) Record(i int) (geo.ShapeRecord, []any) {
	return r.shapes[i], r.rows[i]
}
