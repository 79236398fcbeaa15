// Package style resolves display styles from feature classifications.
package style

import (
	"fmt"
	"strconv"
)

// Kind identifies an overlay layer and its lookup table.
type Kind string

// Known layers.
const (
	Clusters   Kind = "clusters"
	Geological Kind = "geological"
)

// Kinds lists every layer in display order.
var Kinds = []Kind{Clusters, Geological}

// ParseKind validates a layer name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown layer %q", s)
}

// Fixed outline settings shared by every layer.
const (
	StrokeColor   = "#000000"
	StrokeWeight  = 1
	HoveredWeight = 3
)

// Style is the rendered look of one feature.
type Style struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	Label       string  `json:"label"`
	Weight      int     `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Resolve returns the style for a classification on the given layer.
// Unrecognized layers and classifications get the default entry.
func Resolve(kind Kind, class string, hovered bool) Style {
	t := TableFor(kind)
	rule := t.Rule(class)

	s := Style{
		Color:       StrokeColor,
		FillColor:   rule.Color,
		Label:       rule.Label,
		Weight:      StrokeWeight,
		FillOpacity: t.FillOpacity,
	}
	if hovered {
		s.Weight = HoveredWeight
	}

	return s
}

// MilestoneKey formats a milestone stage as a table key.
func MilestoneKey(stage int) string {
	return strconv.Itoa(stage)
}
