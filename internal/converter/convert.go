// Package converter drives shapefile to GeoJSON conversion runs.
package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lotworks/shp2geojson/internal/geo"
	"github.com/lotworks/shp2geojson/internal/shp"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// Options control a conversion run.
type Options struct {
	CRS    string // CRS name written into the document, DefaultCRS if empty
	OutDir string // output directory, next to the input if empty
	Minify bool   // emit compact JSON instead of 2-space indented
}

// Convert reads the shapefile pair at shpPath and writes its GeoJSON
// document to outPath.
func Convert(shpPath, outPath string, opts Options) error {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return err
	}

	fc, err := Collect(reader, opts.CRS)
	if err != nil {
		return err
	}

	data, err := Encode(fc, opts.Minify)
	if err != nil {
		return err
	}

	if err := writeDocument(outPath, data); err != nil {
		return err
	}

	log.Info().
		Str("input", filepath.Base(shpPath)).
		Str("output", filepath.Base(outPath)).
		Int("features", len(fc.Features)).
		Msg("Converted shapefile")

	return nil
}

// Collect assembles the feature collection for every record of a
// decoded source, in source order. Records without a supported
// geometry are skipped silently.
func Collect(r *shp.Reader, crs string) (*geo.FeatureCollection, error) {
	fc := geo.NewFeatureCollection(crs)

	for i := 0; i < r.Len(); i++ {
		rec, row := r.Record(i)

		feature, err := geo.AssembleFeature(rec, r.Fields, row)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if feature == nil {
			log.Debug().
				Int("record", i).
				Int("shape_type", int(rec.Type)).
				Msg("Skipping record with unsupported shape type")

			continue
		}

		fc.Features = append(fc.Features, *feature)
	}

	return fc, nil
}

// Encode marshals the document with 2-space indentation, or compacted
// when minified is set. The whole document is buffered here so a
// failing sink never leaves partial output behind.
func Encode(fc *geo.FeatureCollection, minified bool) ([]byte, error) {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return nil, err
	}

	if !minified {
		return data, nil
	}

	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)

	return m.Bytes("application/json", data)
}

// writeDocument persists the document, surfacing close errors since
// that is where buffered write failures show up.
func writeDocument(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ConvertDir converts every shapefile under dir matching pattern. A
// failing file is logged and the rest of the batch still runs; the
// returned error reports how many inputs failed.
func ConvertDir(dir, pattern string, opts Options) error {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		log.Warn().Str("dir", dir).Str("pattern", pattern).Msg("No shapefiles matched")
		return nil
	}

	log.Info().Int("count", len(matches)).Str("dir", dir).Msg("Starting batch conversion")

	failed := 0
	for _, path := range matches {
		if err := Convert(path, OutputPath(path, opts.OutDir), opts); err != nil {
			log.Error().Err(err).Str("input", path).Msg("Failed to convert shapefile")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d shapefiles failed", failed, len(matches))
	}

	return nil
}

// OutputPath derives the .geojson output path for a shapefile,
// keeping it next to the input unless outDir is set.
func OutputPath(shpPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(shpPath), filepath.Ext(shpPath)) + ".geojson"

	if outDir == "" {
		return filepath.Join(filepath.Dir(shpPath), base)
	}

	return filepath.Join(outDir, base)
}
