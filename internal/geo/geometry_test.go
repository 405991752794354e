package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGeometry_Point(t *testing.T) {
	rec := ShapeRecord{
		Type:   ShapePoint,
		Points: [][]float64{{-77.56, 39.11}},
	}

	geom := BuildGeometry(rec)

	require.NotNil(t, geom)
	require.Equal(t, "Point", geom.Type)
	require.Equal(t, []float64{-77.56, 39.11}, geom.Coordinates)
}

func TestBuildGeometry_SinglePartPolyLine(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 0}}
	rec := ShapeRecord{Type: ShapePolyLine, Points: points, Parts: []int32{0}}

	geom := BuildGeometry(rec)

	require.NotNil(t, geom)
	require.Equal(t, "LineString", geom.Type)
	require.Equal(t, points, geom.Coordinates)
}

func TestBuildGeometry_MultiPartPolyLine(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}, {10, 10}, {11, 10}}
	rec := ShapeRecord{Type: ShapePolyLine, Points: points, Parts: []int32{0, 3}}

	geom := BuildGeometry(rec)

	require.NotNil(t, geom)
	require.Equal(t, "MultiLineString", geom.Type)

	lines, ok := geom.Coordinates.([][][]float64)
	require.True(t, ok)
	require.Len(t, lines, 2)
	require.Equal(t, points[0:3], lines[0])
	require.Equal(t, points[3:5], lines[1])

	// No coordinate is lost or duplicated by the split.
	require.Equal(t, len(points), len(lines[0])+len(lines[1]))
}

func TestBuildGeometry_SingleRingPolygon(t *testing.T) {
	points := [][]float64{{0, 0}, {4, 0}, {4, 4}, {0, 0}}
	rec := ShapeRecord{Type: ShapePolygon, Points: points, Parts: []int32{0}}

	geom := BuildGeometry(rec)

	require.NotNil(t, geom)
	require.Equal(t, "Polygon", geom.Type)
	require.Equal(t, [][][]float64{points}, geom.Coordinates)
}

func TestBuildGeometry_MultiRingPolygonStaysOneFeature(t *testing.T) {
	points := [][]float64{
		{0, 0}, {4, 0}, {4, 4}, {0, 0},
		{1, 1}, {2, 1}, {2, 2}, {1, 1},
	}
	rec := ShapeRecord{Type: ShapePolygon, Points: points, Parts: []int32{0, 4}}

	geom := BuildGeometry(rec)

	require.NotNil(t, geom)
	require.Equal(t, "Polygon", geom.Type)

	rings, ok := geom.Coordinates.([][][]float64)
	require.True(t, ok)
	require.Len(t, rings, 2)
	require.Equal(t, points[0:4], rings[0])
	require.Equal(t, points[4:8], rings[1])
}

func TestBuildGeometry_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		rec  ShapeRecord
	}{
		{"Null", ShapeRecord{Type: ShapeNull}},
		{"MultiPoint", ShapeRecord{Type: ShapeMultiPoint, Points: [][]float64{{1, 2}, {3, 4}}}},
		{"PointZ", ShapeRecord{Type: ShapePointZ}},
		{"PolygonM", ShapeRecord{Type: ShapePolygonM}},
		{"MultiPatch", ShapeRecord{Type: ShapeMultiPatch}},
		{"EmptyPoint", ShapeRecord{Type: ShapePoint}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Nil(t, BuildGeometry(tt.rec))
		})
	}
}
