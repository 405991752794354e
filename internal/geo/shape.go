package geo

// ShapeType is the geometry type code of a shapefile record.
type ShapeType int32

// Shape type codes from the ESRI shapefile specification. Only Point,
// PolyLine and Polygon have a GeoJSON mapping here; everything else,
// including the Z and M variants, is carried through undecoded and
// dropped during feature assembly.
const (
	ShapeNull        ShapeType = 0
	ShapePoint       ShapeType = 1
	ShapePolyLine    ShapeType = 3
	ShapePolygon     ShapeType = 5
	ShapeMultiPoint  ShapeType = 8
	ShapePointZ      ShapeType = 11
	ShapePolyLineZ   ShapeType = 13
	ShapePolygonZ    ShapeType = 15
	ShapeMultiPointZ ShapeType = 18
	ShapePointM      ShapeType = 21
	ShapePolyLineM   ShapeType = 23
	ShapePolygonM    ShapeType = 25
	ShapeMultiPointM ShapeType = 28
	ShapeMultiPatch  ShapeType = 31
)

// ShapeRecord is one decoded geometry: a type code, a flat coordinate
// buffer and the start offset of each part within it. Parts offsets
// are strictly increasing and index into Points.
type ShapeRecord struct {
	Type   ShapeType
	Points [][]float64
	Parts  []int32
}
