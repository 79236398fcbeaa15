package geo

import (
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
)

func shift(p orb.Point) orb.Point {
	return orb.Point{p[0] + 1, p[1] * 2}
}

func TestReprojectKeepsShape(t *testing.T) {
	is := is.New(t)

	in := orb.MultiPolygon{
		{
			{{0, 0}, {4, 0}, {4, 4}, {0, 0}},
			{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
		},
		{
			{{10, 10}, {11, 10}, {11, 11}, {10, 10}},
		},
	}

	out, ok := Reproject(in, shift).(orb.MultiPolygon)
	is.True(ok)
	is.Equal(len(out), len(in))
	for i := range in {
		is.Equal(len(out[i]), len(in[i]))
		for j := range in[i] {
			is.Equal(len(out[i][j]), len(in[i][j]))
			for k := range in[i][j] {
				is.Equal(out[i][j][k], shift(in[i][j][k])) // leaf order preserved
			}
		}
	}
}

func TestReprojectDoesNotMutate(t *testing.T) {
	is := is.New(t)

	in := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}
	_ = Reproject(in, shift)

	is.Equal(in[0][1], orb.Point{1, 0})
}

func TestReprojectTaggedUnion(t *testing.T) {
	is := is.New(t)

	is.Equal(Reproject(orb.Point{1, 1}, shift), orb.Point{2, 2})
	is.Equal(Reproject(orb.LineString{{0, 1}}, shift), orb.LineString{{1, 2}})
	is.Equal(Reproject(orb.Ring{{0, 1}}, shift), orb.Ring{{1, 2}})
	is.Equal(Reproject(orb.MultiPoint{{0, 1}}, shift), orb.MultiPoint{{1, 2}})
	is.Equal(Reproject(orb.MultiLineString{{{0, 1}}}, shift), orb.MultiLineString{{{1, 2}}})

	coll := Reproject(orb.Collection{orb.Point{0, 0}, orb.Ring{{1, 1}}}, shift).(orb.Collection)
	is.Equal(coll[0], orb.Point{1, 0})
	is.Equal(coll[1], orb.Ring{{2, 2}})

	is.Equal(Reproject(nil, shift), nil)
}

func TestReprojectUTMPolygon(t *testing.T) {
	is := is.New(t)

	zone := UTM{Zone: 33}
	in := orb.Polygon{{{500000, 5000000}, {501000, 5000000}, {501000, 5001000}, {500000, 5000000}}}

	out := Reproject(in, zone.Inverse).(orb.Polygon)
	for i, p := range out[0] {
		is.Equal(p, zone.Inverse(in[0][i]))
		is.True(p[0] > 14 && p[0] < 16)
		is.True(p[1] > 45 && p[1] < 46)
	}
}
