// Package interact computes per-feature presentation: classification,
// style, area, tooltip, hover state and click-to-fit viewports.
package interact

import (
	"fmt"

	"github.com/woozymasta/clustermap/internal/classify"
	"github.com/woozymasta/clustermap/internal/geo"
	"github.com/woozymasta/clustermap/internal/loader"
	"github.com/woozymasta/clustermap/internal/style"

	"github.com/paulmach/orb/geojson"
)

// Presentation is everything a map client needs to draw one feature.
type Presentation struct {
	ID             string      `json:"id"`
	Classification string      `json:"classification"`
	Name           string      `json:"name"`
	Tooltip        string      `json:"tooltip"`
	Style          style.Style `json:"style"`
	AreaKm2        float64     `json:"area_km2"`
	Hovered        bool        `json:"hovered"`
}

// Classify returns the classification key of a feature on layer kind.
// A missing or malformed milestone maps to the clusters default entry.
func Classify(kind style.Kind, props geojson.Properties) string {
	if kind == style.Geological {
		return classify.Lithology(props)
	}

	stage, ok := classify.MilestoneStage(props)
	if !ok {
		return style.ClustersTable.Default.Key
	}
	return style.MilestoneKey(stage)
}

// Present evaluates the presentation of f; it is a pure function of its inputs.
func Present(kind style.Kind, f *geojson.Feature, hovered bool) Presentation {
	class := Classify(kind, f.Properties)
	p := Presentation{
		ID:             loader.FeatureID(f),
		Classification: class,
		Name:           classify.Name(f.Properties),
		Style:          style.Resolve(kind, class, hovered),
		AreaKm2:        geo.AreaKm2(f.Geometry),
		Hovered:        hovered,
	}
	p.Tooltip = tooltip(kind, p)

	return p
}

func tooltip(kind style.Kind, p Presentation) string {
	if kind == style.Geological {
		return fmt.Sprintf("%s: %s\nArea: %.2f km²", p.Classification, p.Style.Label, p.AreaKm2)
	}
	return fmt.Sprintf("%s\n%s\nArea: %.2f km²", p.Name, p.Style.Label, p.AreaKm2)
}

// Decorate returns a copy of fc whose feature properties carry the
// presentation under the "presentation" key.
func Decorate(kind style.Kind, fc *geojson.FeatureCollection, t *Tracker) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	if fc == nil {
		return out
	}

	for _, f := range fc.Features {
		p := Present(kind, f, t.Hovered(kind, loader.FeatureID(f)))

		props := make(geojson.Properties, len(f.Properties)+1)
		for k, v := range f.Properties {
			props[k] = v
		}
		props["presentation"] = p

		out.Append(&geojson.Feature{
			ID:         f.ID,
			Type:       f.Type,
			Geometry:   f.Geometry,
			Properties: props,
		})
	}

	return out
}

// Fit returns the viewport that frames f with padding pixels on every side.
func Fit(f *geojson.Feature, size geo.Size, padding, maxZoom int) (geo.Viewport, error) {
	if f.Geometry == nil {
		return geo.Viewport{}, fmt.Errorf("feature %s has no geometry", loader.FeatureID(f))
	}
	return geo.FitBounds(f.Geometry.Bound(), size, padding, maxZoom), nil
}
