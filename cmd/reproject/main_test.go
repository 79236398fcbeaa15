package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/woozymasta/clustermap/internal/geo"
	"github.com/woozymasta/clustermap/internal/loader"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gopkg.in/yaml.v3"
)

const utmDoc = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "a", "properties": {"LITHCODE": "Kg"},
     "geometry": {"type": "Polygon", "coordinates": [[[500000, 5000000], [501000, 5000000], [501000, 5001000], [500000, 5000000]]]}}
  ]
}`

func build(t *testing.T) *loader.Collection {
	t.Helper()
	c, err := loader.Build("test", []byte(utmDoc), geo.UTM{Zone: 33}.Inverse)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestEncodeJSONCompact(t *testing.T) {
	is := is.New(t)

	out, err := encode(build(t), Options{Format: "json"})
	is.NoErr(err)
	is.True(!strings.Contains(string(out), "\n"))

	fc, err := geojson.UnmarshalFeatureCollection(out)
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)

	p := fc.Features[0].Geometry.(orb.Polygon)[0][0]
	is.True(p[0] > 14.9 && p[0] < 15.1) // lon near the zone 33 meridian
	is.True(p[1] > 45 && p[1] < 45.2)
}

func TestEncodeJSONPretty(t *testing.T) {
	is := is.New(t)

	out, err := encode(build(t), Options{Format: "json", Pretty: true})
	is.NoErr(err)
	is.True(strings.Contains(string(out), "\n  "))

	var tree map[string]any
	is.NoErr(json.Unmarshal(out, &tree))
	is.Equal(tree["type"], "FeatureCollection")
}

func TestEncodeYAML(t *testing.T) {
	is := is.New(t)

	out, err := encode(build(t), Options{Format: "yaml"})
	is.NoErr(err)

	var tree struct {
		Type     string `yaml:"type"`
		Features []struct {
			ID         string         `yaml:"id"`
			Properties map[string]any `yaml:"properties"`
			Geometry   struct {
				Type        string        `yaml:"type"`
				Coordinates [][][]float64 `yaml:"coordinates"`
			} `yaml:"geometry"`
		} `yaml:"features"`
	}
	is.NoErr(yaml.Unmarshal(out, &tree))

	is.Equal(tree.Type, "FeatureCollection")
	is.Equal(len(tree.Features), 1)
	is.Equal(tree.Features[0].ID, "a")
	is.Equal(tree.Features[0].Properties["LITHCODE"], "Kg")
	is.Equal(tree.Features[0].Geometry.Type, "Polygon")
	is.Equal(len(tree.Features[0].Geometry.Coordinates[0]), 4)
}
