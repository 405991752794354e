// Package shp reads ESRI shapefile geometry (.shp) and attribute
// table (.dbf) files and pairs their records.
package shp

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lotworks/shp2geojson/internal/geo"
)

const (
	shpFileCode   = 9994
	shpHeaderSize = 100
)

// readShapes decodes every geometry record of a .shp file.
//
// The file layout is a 100 byte header followed by records, each with
// an 8 byte big-endian header (record number, content length in 16-bit
// words) and little-endian content starting with the shape type code.
func readShapes(data []byte) ([]geo.ShapeRecord, error) {
	if len(data) < shpHeaderSize {
		return nil, fmt.Errorf("shp: header truncated at %d bytes", len(data))
	}

	if code := binary.BigEndian.Uint32(data[0:4]); code != shpFileCode {
		return nil, fmt.Errorf("shp: bad file code %d", code)
	}

	// File length lives in the big-endian header half, in 16-bit words.
	fileLen := int(binary.BigEndian.Uint32(data[24:28])) * 2
	if fileLen > len(data) {
		return nil, fmt.Errorf("shp: header declares %d bytes, file has %d", fileLen, len(data))
	}

	var records []geo.ShapeRecord

	off := shpHeaderSize
	for off+8 <= fileLen {
		num := binary.BigEndian.Uint32(data[off : off+4])
		contentLen := int(binary.BigEndian.Uint32(data[off+4:off+8])) * 2

		if off+8+contentLen > fileLen {
			return nil, fmt.Errorf("shp: record %d overruns file", num)
		}

		rec, err := decodeShape(data[off+8 : off+8+contentLen])
		if err != nil {
			return nil, fmt.Errorf("shp: record %d: %w", num, err)
		}

		records = append(records, rec)
		off += 8 + contentLen
	}

	return records, nil
}

// decodeShape decodes one record content. Types without a GeoJSON
// mapping keep their tag with no coordinates, so the assembler can
// drop them without the reader failing the whole file.
func decodeShape(body []byte) (geo.ShapeRecord, error) {
	if len(body) < 4 {
		return geo.ShapeRecord{}, fmt.Errorf("content truncated at %d bytes", len(body))
	}

	shapeType := geo.ShapeType(binary.LittleEndian.Uint32(body[0:4]))

	switch shapeType {
	case geo.ShapePoint:
		if len(body) < 20 {
			return geo.ShapeRecord{}, fmt.Errorf("point content truncated at %d bytes", len(body))
		}

		return geo.ShapeRecord{
			Type:   shapeType,
			Points: [][]float64{{readFloat(body[4:12]), readFloat(body[12:20])}},
		}, nil

	case geo.ShapePolyLine, geo.ShapePolygon:
		return decodePolyShape(shapeType, body)

	case geo.ShapeMultiPoint:
		// Box (32 bytes) then point count and points.
		if len(body) < 40 {
			return geo.ShapeRecord{}, fmt.Errorf("multipoint content truncated at %d bytes", len(body))
		}

		numPoints := int(int32(binary.LittleEndian.Uint32(body[36:40])))
		points, err := readPoints(body, 40, numPoints)
		if err != nil {
			return geo.ShapeRecord{}, err
		}

		return geo.ShapeRecord{Type: shapeType, Points: points}, nil

	default:
		return geo.ShapeRecord{Type: shapeType}, nil
	}
}

// decodePolyShape decodes PolyLine and Polygon contents, which share
// one layout: box (32 bytes), part count, point count, part offsets,
// then the flat point buffer.
func decodePolyShape(shapeType geo.ShapeType, body []byte) (geo.ShapeRecord, error) {
	if len(body) < 44 {
		return geo.ShapeRecord{}, fmt.Errorf("%v content truncated at %d bytes", shapeType, len(body))
	}

	numParts := int(int32(binary.LittleEndian.Uint32(body[36:40])))
	numPoints := int(int32(binary.LittleEndian.Uint32(body[40:44])))

	if numParts < 0 || numPoints < 0 {
		return geo.ShapeRecord{}, fmt.Errorf("negative part or point count")
	}

	partsEnd := 44 + 4*numParts
	if len(body) < partsEnd {
		return geo.ShapeRecord{}, fmt.Errorf("part table truncated")
	}

	// Part offsets must be strictly increasing and index into the
	// point buffer, otherwise splitting parts downstream would slice
	// out of range.
	parts := make([]int32, numParts)
	for i := range parts {
		parts[i] = int32(binary.LittleEndian.Uint32(body[44+4*i : 48+4*i]))
		if parts[i] < 0 || int(parts[i]) > numPoints {
			return geo.ShapeRecord{}, fmt.Errorf("part offset %d out of range", parts[i])
		}
		if i > 0 && parts[i] <= parts[i-1] {
			return geo.ShapeRecord{}, fmt.Errorf("part offset %d not after %d", parts[i], parts[i-1])
		}
	}

	points, err := readPoints(body, partsEnd, numPoints)
	if err != nil {
		return geo.ShapeRecord{}, err
	}

	return geo.ShapeRecord{Type: shapeType, Points: points, Parts: parts}, nil
}

// readPoints decodes numPoints coordinate pairs starting at off.
func readPoints(body []byte, off, numPoints int) ([][]float64, error) {
	if numPoints < 0 || len(body) < off+16*numPoints {
		return nil, fmt.Errorf("point buffer truncated")
	}

	points := make([][]float64, numPoints)
	for i := range points {
		p := off + 16*i
		points[i] = []float64{readFloat(body[p : p+8]), readFloat(body[p+8 : p+16])}
	}

	return points, nil
}

func readFloat(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
