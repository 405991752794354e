// Command mkicon renders the project's lancelet marker icon and
// writes it as transparent PNG, 24-bit BMP and lossless WebP.
package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/lotworks/shp2geojson/internal/logger"

	"github.com/chai2010/webp"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Out  string `short:"o" long:"out"  description:"Output directory" default:"."`
	Name string `short:"n" long:"name" description:"Base name of the icon files" default:"icon"`
	Size int    `short:"s" long:"size" description:"Icon size in pixels" default:"24"`
}

// The icon is drawn on a fixed 24x24 grid and scaled afterwards, so
// the shape stays identical at every size.
const baseSize = 24

var (
	bodyColor    = color.NRGBA{R: 70, G: 130, B: 180, A: 255} // steel blue
	outlineColor = color.NRGBA{R: 40, G: 80, B: 120, A: 255}
	segmentColor = color.NRGBA{R: 40, G: 80, B: 120, A: 200}
)

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if opts.Size <= 0 {
		log.Fatal().Int("size", opts.Size).Msg("Icon size must be positive")
	}

	img := renderIcon()
	if opts.Size != baseSize {
		scaled := image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	pngPath := filepath.Join(opts.Out, opts.Name+".png")
	if err := writeImage(pngPath, func(f *os.File) error { return png.Encode(f, img) }); err != nil {
		log.Fatal().Err(err).Str("path", pngPath).Msg("Failed to write PNG icon")
	}

	// BMP has no transparency here: composite over white for an
	// opaque 24-bit file.
	bmpPath := filepath.Join(opts.Out, opts.Name+".bmp")
	opaque := flattenWhite(img)
	if err := writeImage(bmpPath, func(f *os.File) error { return bmp.Encode(f, opaque) }); err != nil {
		log.Fatal().Err(err).Str("path", bmpPath).Msg("Failed to write BMP icon")
	}

	webpPath := filepath.Join(opts.Out, opts.Name+".webp")
	if err := writeImage(webpPath, func(f *os.File) error {
		return webp.Encode(f, img, &webp.Options{Lossless: true})
	}); err != nil {
		log.Fatal().Err(err).Str("path", webpPath).Msg("Failed to write WebP icon")
	}

	log.Info().
		Int("size", opts.Size).
		Str("dir", opts.Out).
		Msg("Icon files created")
}

// renderIcon draws the lancelet: an elongated body, pointed head and
// tail, and the characteristic segmentation marks.
func renderIcon() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, baseSize, baseSize))

	// Body ellipse spanning x 4..20, y 8..16, outline one pixel wide.
	fillEllipse(img, 12, 12, 8, 4, outlineColor)
	fillEllipse(img, 12, 12, 7, 3, bodyColor)

	// Pointed ends.
	fillTriangle(img, 2, 12, 4, 9, 4, 15, bodyColor)
	fillTriangle(img, 22, 12, 20, 9, 20, 15, bodyColor)

	// Segmentation marks.
	for x := 7; x < 18; x += 3 {
		drawVLine(img, x, 9, 15, segmentColor)
	}

	return img
}

func fillEllipse(img *image.NRGBA, cx, cy, rx, ry float64, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func fillTriangle(img *image.NRGBA, x0, y0, x1, y1, x2, y2 int, c color.NRGBA) {
	side := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d0 := side(x0, y0, x1, y1, x, y)
			d1 := side(x1, y1, x2, y2, x, y)
			d2 := side(x2, y2, x0, y0, x, y)

			neg := d0 < 0 || d1 < 0 || d2 < 0
			pos := d0 > 0 || d1 > 0 || d2 > 0
			if !(neg && pos) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	for y := y0; y <= y1; y++ {
		img.SetNRGBA(x, y, c)
	}
}

// flattenWhite composites the icon over a white background.
func flattenWhite(src image.Image) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)

	return dst
}

func writeImage(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
