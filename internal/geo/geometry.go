package geo

// BuildGeometry converts one decoded shape record into its GeoJSON
// geometry. Shape types outside Point, PolyLine and Polygon yield nil;
// callers skip such records rather than treating them as errors.
func BuildGeometry(rec ShapeRecord) *Geometry {
	switch rec.Type {
	case ShapePoint:
		if len(rec.Points) == 0 {
			return nil
		}

		return &Geometry{Type: "Point", Coordinates: rec.Points[0]}

	case ShapePolyLine:
		if len(rec.Parts) <= 1 {
			return &Geometry{Type: "LineString", Coordinates: rec.Points}
		}

		return &Geometry{Type: "MultiLineString", Coordinates: splitParts(rec.Points, rec.Parts)}

	case ShapePolygon:
		if len(rec.Parts) <= 1 {
			return &Geometry{Type: "Polygon", Coordinates: [][][]float64{rec.Points}}
		}

		// Extra rings may be holes of one polygon or disjoint
		// exteriors; the shapefile format does not distinguish the
		// two at this level, so all rings stay siblings of a single
		// Polygon and no winding analysis is done.
		return &Geometry{Type: "Polygon", Coordinates: splitParts(rec.Points, rec.Parts)}

	default:
		return nil
	}
}

// splitParts slices the flat coordinate buffer into one sequence per
// part. Each part runs from its start offset to the next part's start
// offset, the last part to the end of the buffer.
func splitParts(points [][]float64, parts []int32) [][][]float64 {
	out := make([][][]float64, 0, len(parts))

	for i, start := range parts {
		end := int32(len(points))
		if i < len(parts)-1 {
			end = parts[i+1]
		}

		out = append(out, points[start:end])
	}

	return out
}
