// Package loader fetches GeoJSON documents and prepares them for display.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/woozymasta/clustermap/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

var (
	ErrStatus = errors.New("unexpected response status")
	ErrDecode = errors.New("invalid GeoJSON document")
)

// Collection is a loaded layer: the document as fetched plus its
// display-ready WGS84 copy. Both are read-only once built.
type Collection struct {
	Original *geojson.FeatureCollection
	Features *geojson.FeatureCollection
	Source   string
	Raw      []byte
}

// Len returns the number of features.
func (c *Collection) Len() int {
	if c == nil || c.Features == nil {
		return 0
	}
	return len(c.Features.Features)
}

// Feature returns the display feature with the given id.
func (c *Collection) Feature(id string) (*geojson.Feature, bool) {
	if c == nil || c.Features == nil {
		return nil, false
	}
	for _, f := range c.Features.Features {
		if FeatureID(f) == id {
			return f, true
		}
	}
	return nil, false
}

// FeatureID returns the feature id as a string.
func FeatureID(f *geojson.Feature) string {
	if f.ID == nil {
		return ""
	}
	return fmt.Sprint(f.ID)
}

// Loader fetches layer documents. There are no retries.
type Loader struct {
	Client *http.Client
}

// New returns a loader using client, or http.DefaultClient when nil.
func New(client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{Client: client}
}

// Load reads source (an http(s) URL or a local path), parses it and, when
// proj is non-nil, reprojects a clone of every geometry through it.
func (l *Loader) Load(ctx context.Context, source string, proj orb.Projection) (*Collection, error) {
	data, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}

	return Build(source, data, proj)
}

// Build parses data and prepares the display copy.
func Build(source string, data []byte, proj orb.Projection) (*Collection, error) {
	original, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, source, err)
	}

	assignIDs(original)

	features := geojson.NewFeatureCollection()
	for _, f := range original.Features {
		features.Append(displayFeature(f, proj))
	}

	log.Debug().
		Str("source", source).
		Int("features", len(features.Features)).
		Bool("reprojected", proj != nil).
		Msg("GeoJSON document loaded")

	return &Collection{
		Original: original,
		Features: features,
		Source:   source,
		Raw:      data,
	}, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !isURL(source) {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %d", ErrStatus, source, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// assignIDs gives every feature without an id a generated one so that
// interaction state can address it.
func assignIDs(fc *geojson.FeatureCollection) {
	for _, f := range fc.Features {
		if f.ID == nil {
			f.ID = uuid.NewString()
		}
	}
}

func displayFeature(f *geojson.Feature, proj orb.Projection) *geojson.Feature {
	props := make(geojson.Properties, len(f.Properties))
	for k, v := range f.Properties {
		props[k] = v
	}

	g := f.Geometry
	if proj != nil {
		g = geo.Reproject(g, proj)
	} else if g != nil {
		g = orb.Clone(g)
	}

	return &geojson.Feature{
		ID:         f.ID,
		Type:       f.Type,
		Geometry:   g,
		Properties: props,
	}
}
