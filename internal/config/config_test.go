package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

const sample = `
attribution: "Tiles by OSM"
active: geological
layers:
  - name: clusters
    source: ./data/clusters.geojson
  - name: geological
    source: https://example.com/geology.geojson
    utm:
      zone: 36
      south: true
`

func TestParse(t *testing.T) {
	is := is.New(t)

	cfg, err := Parse([]byte(sample))
	is.NoErr(err)

	is.Equal(cfg.Attribution, "Tiles by OSM")
	is.Equal(cfg.Active, "geological")
	is.Equal(cfg.Tiles, DefaultTiles)
	is.Equal(cfg.MaxZoom, DefaultMaxZoom)
	is.Equal(cfg.PaddingPx(), DefaultPadding)
	is.Equal(len(cfg.Layers), 2)

	is.Equal(cfg.Layers[0].UTM, nil)
	geoLayer, ok := cfg.Layer("geological")
	is.True(ok)
	is.Equal(geoLayer.UTM.Zone, 36)
	is.True(geoLayer.UTM.South)
}

func TestParseRejects(t *testing.T) {
	is := is.New(t)

	cases := map[string]string{
		"unknown layer": "layers: [{name: roads, source: a}]",
		"no source":     "layers: [{name: clusters}]",
		"duplicate":     "layers: [{name: clusters, source: a}, {name: clusters, source: b}]",
		"bad zone":      "layers: [{name: clusters, source: a, utm: {zone: 99}}]",
		"bad active":    "active: roads",
		"neg padding":   "padding: -5",
	}

	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		is.True(err != nil) // each case must fail
		t.Logf("%s: %v", name, err)
	}
}

func TestLoad(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	is.NoErr(os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(len(cfg.Layers), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}

func TestExplicitZeroPadding(t *testing.T) {
	is := is.New(t)

	cfg, err := Parse([]byte("padding: 0"))
	is.NoErr(err)
	is.Equal(cfg.PaddingPx(), 0)

	cfg, err = Parse([]byte("padding: 35"))
	is.NoErr(err)
	is.Equal(cfg.PaddingPx(), 35)

	is.Equal((&Config{}).PaddingPx(), DefaultPadding)
}

func TestCachePath(t *testing.T) {
	is := is.New(t)

	cfg, err := Parse([]byte("data_dir: cache\nlayers: [{name: geological, source: a.geojson}]"))
	is.NoErr(err)
	is.Equal(cfg.CachePath(cfg.Layers[0]), filepath.Join("cache", "geological.geojson"))
}
