// Package geo builds GeoJSON documents from decoded shapefile records.
package geo

import (
	"bytes"
	"encoding/json"
)

// DefaultCRS is the WGS84 geographic system, the GeoJSON standard.
const DefaultCRS = "EPSG:4326"

// FeatureCollection is the root GeoJSON document.
type FeatureCollection struct {
	Type     string    `json:"type"`
	CRS      CRS       `json:"crs"`
	Features []Feature `json:"features"`
}

// CRS declares the coordinate reference system of a document.
type CRS struct {
	Type       string   `json:"type"`
	Properties CRSProps `json:"properties"`
}

// CRSProps holds the named CRS identifier.
type CRSProps struct {
	Name string `json:"name"`
}

// NewFeatureCollection returns an empty document declaring crsName as
// its coordinate reference system. An empty crsName falls back to
// DefaultCRS.
func NewFeatureCollection(crsName string) *FeatureCollection {
	if crsName == "" {
		crsName = DefaultCRS
	}

	return &FeatureCollection{
		Type: "FeatureCollection",
		CRS: CRS{
			Type:       "name",
			Properties: CRSProps{Name: crsName},
		},
		Features: []Feature{},
	}
}

// Feature pairs one geometry with its named attributes.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   *Geometry  `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry is a tagged GeoJSON geometry value. Coordinates holds the
// nesting that matches Type: []float64 for Point, [][]float64 for
// LineString, [][][]float64 for MultiLineString and Polygon.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// Property is one named attribute value.
type Property struct {
	Name  string
	Value any
}

// Properties is a name/value mapping that keeps its field order.
// Member order is not significant in GeoJSON, but preserving it keeps
// the output stable and aligned with the source attribute table.
type Properties []Property

// Get returns the value stored under name.
func (p Properties) Get(name string) (any, bool) {
	for _, kv := range p {
		if kv.Name == name {
			return kv.Value, true
		}
	}

	return nil, false
}

// MarshalJSON writes the mapping as a JSON object in field order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, kv := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(kv.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		value, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
