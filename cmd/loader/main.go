package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/woozymasta/clustermap/internal/config"
	"github.com/woozymasta/clustermap/internal/loader"
	"github.com/woozymasta/clustermap/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Output     string        `short:"o" long:"out"     env:"DATA_DIR"    description:"Output directory (defaults to data_dir from config)"`
	Limit      []string      `short:"l" long:"limit"   env:"LIMIT_NAMES" description:"Limit processing to specific layer names"`
	Timeout    time.Duration `short:"t" long:"timeout" env:"FETCH_TIMEOUT" description:"Fetch timeout" default:"15s"`
	Force      bool          `short:"f" long:"force"   description:"Force overwrite of existing files"`
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

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	outDir := cfg.DataDir
	if opts.Output != "" {
		outDir = opts.Output
	}

	// Filter layers if limit is set
	layers := cfg.Layers
	if len(opts.Limit) > 0 {
		layers = make([]config.Layer, 0, len(opts.Limit))
		seen := make(map[string]bool)

		for _, name := range opts.Limit {
			if seen[name] {
				continue
			}
			seen[name] = true

			if l, ok := cfg.Layer(name); ok {
				layers = append(layers, l)
			} else {
				log.Error().
					Str("name", name).
					Msg("Layer specified in --limit not found in configuration")
			}
		}
	}

	log.Info().
		Int("layers_total", len(cfg.Layers)).
		Int("layers_queued", len(layers)).
		Str("out", outDir).
		Msg("Starting loader")

	l := loader.New(&http.Client{Timeout: opts.Timeout})
	failed := 0

	for _, layer := range layers {
		dest := filepath.Join(outDir, layer.Name+".geojson")

		if loader.SamePath(dest, layer.Source) {
			failed++
			log.Error().
				Str("layer", layer.Name).
				Str("path", dest).
				Msg("Layer source is its own cache file, refusing to overwrite")
			continue
		}

		if _, err := os.Stat(dest); err == nil && !opts.Force {
			log.Debug().Str("layer", layer.Name).Msg("Layer file exists, skipping")
			continue
		}

		var proj orb.Projection
		if layer.UTM != nil {
			proj = layer.UTM.Inverse
		}

		c, err := l.Load(context.Background(), layer.Source, proj)
		if err != nil {
			failed++
			log.Error().Err(err).Str("layer", layer.Name).Msg("Failed to load layer")
			continue
		}

		if err := loader.Save(dest, c.Features); err != nil {
			failed++
			log.Error().Err(err).Str("layer", layer.Name).Msg("Failed to save layer")
			continue
		}

		log.Info().
			Str("layer", layer.Name).
			Int("features", c.Len()).
			Str("path", dest).
			Msg("Layer saved")
	}

	if failed > 0 {
		log.Error().Int("failed", failed).Msg("Loader finished with errors")
		os.Exit(1)
	}

	log.Info().Msg("Loader finished successfully")
}
