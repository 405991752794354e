package main

import (
	"os"

	"github.com/lotworks/shp2geojson/internal/config"
	"github.com/lotworks/shp2geojson/internal/converter"
	"github.com/lotworks/shp2geojson/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to configuration file"`
	Dir        string `short:"d" long:"dir"     description:"Convert every matching shapefile in a directory"`
	Pattern    string `short:"p" long:"pattern" description:"Glob pattern for batch mode (default *.shp)"`
	OutDir     string `short:"o" long:"out-dir" description:"Directory for output documents (default: next to input)"`
	CRS        string `long:"crs" description:"CRS name written into the document (default EPSG:4326)"`
	Minify     bool   `short:"m" long:"minify"  description:"Emit compact JSON instead of indented"`

	Args struct {
		Input  string `positional-arg-name:"input.shp"`
		Output string `positional-arg-name:"output.geojson"`
	} `positional-args:"yes"`
}

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

	cfg := &config.Config{}
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	// Flags override file values, file values override defaults.
	if opts.CRS != "" {
		cfg.CRS = opts.CRS
	}
	if opts.Pattern != "" {
		cfg.Pattern = opts.Pattern
	}
	if opts.OutDir != "" {
		cfg.OutDir = opts.OutDir
	}
	if opts.Minify {
		cfg.Minify = true
	}
	cfg.ApplyDefaults()

	runOpts := converter.Options{
		CRS:    cfg.CRS,
		OutDir: cfg.OutDir,
		Minify: cfg.Minify,
	}

	switch {
	case opts.Args.Input != "":
		out := opts.Args.Output
		if out == "" {
			out = converter.OutputPath(opts.Args.Input, cfg.OutDir)
		}

		if err := converter.Convert(opts.Args.Input, out, runOpts); err != nil {
			log.Fatal().Err(err).Str("input", opts.Args.Input).Msg("Conversion failed")
		}

	case opts.Dir != "":
		if err := converter.ConvertDir(opts.Dir, cfg.Pattern, runOpts); err != nil {
			log.Fatal().Err(err).Msg("Batch conversion finished with failures")
		}

	default:
		// No input given: convert everything matching the pattern in
		// the current directory.
		if err := converter.ConvertDir(".", cfg.Pattern, runOpts); err != nil {
			log.Fatal().Err(err).Msg("Batch conversion finished with failures")
		}
	}
}
