package server

import (
	"context"
	"os"
	"regexp"

	"github.com/woozymasta/clustermap/internal/config"
	"github.com/woozymasta/clustermap/internal/interact"
	"github.com/woozymasta/clustermap/internal/legend"
	"github.com/woozymasta/clustermap/internal/loader"
	"github.com/woozymasta/clustermap/internal/overlay"
	"github.com/woozymasta/clustermap/internal/style"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config   *config.Config
	State    *overlay.State
	Hover    *interact.Tracker
	Panel    *legend.Panel
	Legend   *legend.Controller
	Minifier *minify.M
}

// NewServerContext wires the overlay state to the legend and attaches
// the legend of the configured active layer. Layers start empty.
func NewServerContext(cfg *config.Config) *ServerContext {
	active, err := style.ParseKind(cfg.Active)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid active layer, falling back to clusters")
		active = style.Clusters
	}

	m := minify.New()
	m.AddFuncRegexp(regexp.MustCompile("[/+]json$"), mjson.Minify)

	panel := &legend.Panel{}
	s := &ServerContext{
		Config:   cfg,
		State:    overlay.New(active),
		Hover:    interact.NewTracker(),
		Panel:    panel,
		Legend:   legend.NewController(panel),
		Minifier: m,
	}

	s.State.Subscribe(func(kind style.Kind) {
		s.Legend.Show(kind)
		log.Debug().Str("layer", string(kind)).Msg("Active layer changed")
	})
	s.Legend.Show(active)

	log.Info().
		Int("layers", len(cfg.Layers)).
		Str("active", string(active)).
		Msg("Server context initialized")

	return s
}

// LoadLayers fetches every configured layer once. A failed layer is
// logged and left empty; the remaining layers still load.
func (s *ServerContext) LoadLayers(ctx context.Context, l *loader.Loader) {
	for _, layer := range s.Config.Layers {
		kind, kerr := layer.Kind()
		if kerr != nil {
			log.Error().Err(kerr).Str("layer", layer.Name).Msg("Skipping layer")
			continue
		}

		source, proj := s.source(layer)
		c, err := l.Load(ctx, source, proj)

		s.State.Replace(kind, c, err)
		s.Hover.Reset(kind)

		if err != nil {
			log.Error().
				Err(err).
				Str("layer", layer.Name).
				Str("source", source).
				Msg("Failed to load layer")
			continue
		}

		log.Info().
			Str("layer", layer.Name).
			Int("features", c.Len()).
			Str("source", source).
			Msg("Layer loaded")
	}
}

// source picks what to load for a layer: the loader's WGS84 cache when
// present, otherwise the configured source with its projection.
func (s *ServerContext) source(layer config.Layer) (string, orb.Projection) {
	cache := s.Config.CachePath(layer)
	if !loader.SamePath(cache, layer.Source) {
		if info, err := os.Stat(cache); err == nil && info.Mode().IsRegular() {
			log.Debug().Str("layer", layer.Name).Str("path", cache).Msg("Using cached layer")
			return cache, nil
		}
	}

	if layer.UTM != nil {
		return layer.Source, layer.UTM.Inverse
	}
	return layer.Source, nil
}
