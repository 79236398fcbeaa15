package legend

import (
	"testing"

	"github.com/woozymasta/clustermap/internal/style"

	"github.com/matryer/is"
)

func TestBuildIncludesDefault(t *testing.T) {
	is := is.New(t)

	c := Build(style.GeologicalTable)
	is.Equal(c.Layer, style.Geological)
	is.Equal(len(c.Entries), len(style.GeologicalTable.Rules)+1)
	is.Equal(c.Entries[len(c.Entries)-1], Entry{Label: "Other", Color: "#118AB2"})

	c = Build(style.ClustersTable)
	is.Equal(c.Entries[2], Entry{Label: "Milestone 2", Color: "#27823B"})
}

func TestRepeatedToggleKeepsOneControl(t *testing.T) {
	is := is.New(t)

	panel := &Panel{}
	ctrl := NewController(panel)

	for _, kind := range []style.Kind{
		style.Clusters, style.Geological, style.Clusters, style.Geological, style.Clusters,
	} {
		ctrl.Show(kind)
		is.Equal(len(panel.Controls()), 1)
	}

	attached := panel.Controls()[0]
	is.Equal(attached, ctrl.Current())
	is.Equal(attached.Layer, style.Clusters)
	is.Equal(attached.Entries, Build(style.ClustersTable).Entries)
}

func TestDetachIdempotent(t *testing.T) {
	is := is.New(t)

	panel := &Panel{}
	ctrl := NewController(panel)

	ctrl.Detach()
	ctrl.Show(style.Geological)
	ctrl.Show(style.Geological)
	is.Equal(len(panel.Controls()), 1)

	ctrl.Detach()
	ctrl.Detach()
	is.Equal(len(panel.Controls()), 0)
	is.Equal(ctrl.Current(), nil)
}
