package geo

// AssembleFeature builds the output Feature for one shape record and
// its attribute row. Records whose shape type has no GeoJSON mapping
// yield (nil, nil): the record is skipped, not failed, and shows up
// only as a smaller feature count.
func AssembleFeature(rec ShapeRecord, fields []string, row []any) (*Feature, error) {
	geom := BuildGeometry(rec)
	if geom == nil {
		return nil, nil
	}

	props, err := ProjectRow(fields, row)
	if err != nil {
		return nil, err
	}

	return &Feature{Type: "Feature", Geometry: geom, Properties: props}, nil
}
