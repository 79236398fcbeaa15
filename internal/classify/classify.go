// Package classify extracts categorical attributes from GeoJSON property bags.
//
// Upstream exports are inconsistent about key naming, so every logical
// attribute is an ordered list of candidate keys resolved by first match.
package classify

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Attribute is a logical property and the keys it may be stored under.
type Attribute struct {
	Name string
	Keys []string
}

var (
	// MilestoneAttr holds the cluster milestone stage.
	MilestoneAttr = Attribute{
		Name: "milestone",
		Keys: []string{"Milestone", "milestone", "MILESTONE", "Milstone", "Mile_stone"},
	}

	// LithologyAttr holds the geological lithology code.
	LithologyAttr = Attribute{
		Name: "lithology",
		Keys: []string{"LITHCODE", "LithCode", "lithcode", "LITH_CODE", "LITHOCODE"},
	}

	// NameAttr holds a human readable feature name.
	NameAttr = Attribute{
		Name: "name",
		Keys: []string{"Name", "name", "NAME", "Cluster", "cluster_name"},
	}
)

// Sentinels returned when no candidate key is present.
const (
	UnknownMilestone = 0
	UnknownLithology = "Unknown"
	UnknownName      = "Unnamed"
)

// Lookup returns the first non-nil value stored under one of the attribute keys.
func (a Attribute) Lookup(props geojson.Properties) (any, bool) {
	for _, key := range a.Keys {
		if v, ok := props[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Milestone returns the milestone stage, or UnknownMilestone.
func Milestone(props geojson.Properties) int {
	stage, ok := MilestoneStage(props)
	if !ok {
		return UnknownMilestone
	}
	return stage
}

// MilestoneStage returns the milestone stage and whether one was present
// and well-formed. Integral numbers and numeric strings are accepted.
func MilestoneStage(props geojson.Properties) (int, bool) {
	v, ok := MilestoneAttr.Lookup(props)
	if !ok {
		return 0, false
	}

	switch v := v.(type) {
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return int(v), true
		}
	case int:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return v, true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32); err == nil {
			return int(n), true
		}
	}

	return 0, false
}

// Lithology returns the lithology code, or UnknownLithology.
func Lithology(props geojson.Properties) string {
	return stringAttr(LithologyAttr, props, UnknownLithology)
}

// Name returns the feature name, or UnknownName.
func Name(props geojson.Properties) string {
	return stringAttr(NameAttr, props, UnknownName)
}

func stringAttr(a Attribute, props geojson.Properties, def string) string {
	v, ok := a.Lookup(props)
	if !ok {
		return def
	}

	var s string
	switch v := v.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return def
	}

	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
