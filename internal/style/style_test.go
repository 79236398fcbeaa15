package style

import (
	"testing"

	"github.com/matryer/is"
)

func TestResolveMilestone(t *testing.T) {
	is := is.New(t)

	s := Resolve(Clusters, MilestoneKey(2), false)
	is.Equal(s.FillColor, "#27823B")
	is.Equal(s.Label, "Milestone 2")
	is.Equal(s.Color, StrokeColor)
	is.Equal(s.Weight, StrokeWeight)
	is.Equal(s.FillOpacity, 0.6)
}

func TestResolveUnknownLithology(t *testing.T) {
	is := is.New(t)

	s := Resolve(Geological, "XYZ", false)
	is.Equal(s.FillColor, "#118AB2")
	is.Equal(s.FillColor, GeologicalTable.Default.Color)
	is.Equal(s.FillOpacity, 0.5)
}

func TestResolveAlwaysDefined(t *testing.T) {
	is := is.New(t)

	for _, kind := range []Kind{Clusters, Geological, "bogus"} {
		for _, class := range []string{"", "default", "99", "-1", "Unknown", "Qal", "2"} {
			s := Resolve(kind, class, false)
			is.True(s.FillColor != "")
			is.True(s.Label != "")
			is.True(s.FillOpacity > 0)
		}
	}

	is.Equal(Resolve(Clusters, "7", false).FillColor, ClustersTable.Default.Color)
}

func TestResolveHover(t *testing.T) {
	is := is.New(t)

	plain := Resolve(Geological, "Kg", false)
	hover := Resolve(Geological, "Kg", true)

	is.Equal(hover.Weight, HoveredWeight)
	hover.Weight = plain.Weight
	is.Equal(hover, plain) // only the outline weight differs
}

func TestParseKind(t *testing.T) {
	is := is.New(t)

	k, err := ParseKind("geological")
	is.NoErr(err)
	is.Equal(k, Geological)

	_, err = ParseKind("roads")
	is.True(err != nil)
}

func TestResolveDefaultKey(t *testing.T) {
	is := is.New(t)

	s := Resolve(Clusters, ClustersTable.Default.Key, false)
	is.Equal(s.FillColor, "#9E9E9E")
	is.Equal(s.Label, "Unknown")

	s = Resolve(Geological, GeologicalTable.Default.Key, false)
	is.Equal(s.FillColor, "#118AB2")
}
