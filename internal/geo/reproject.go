package geo

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Reproject returns a copy of g with every point passed through proj.
// The input geometry is left untouched. A nil geometry yields nil;
// geometry types outside the GeoJSON set panic.
func Reproject(g orb.Geometry, proj orb.Projection) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g := g.(type) {
	case orb.Point:
		return proj(g)
	case orb.MultiPoint:
		return orb.MultiPoint(points(g, proj))
	case orb.LineString:
		return orb.LineString(points(g, proj))
	case orb.Ring:
		return ring(g, proj)
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(g))
		for i, ls := range g {
			out[i] = orb.LineString(points(ls, proj))
		}
		return out
	case orb.Polygon:
		return polygon(g, proj)
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(g))
		for i, p := range g {
			out[i] = polygon(p, proj)
		}
		return out
	case orb.Collection:
		out := make(orb.Collection, len(g))
		for i, child := range g {
			out[i] = Reproject(child, proj)
		}
		return out
	case orb.Bound:
		return orb.MultiPoint{proj(g.Min), proj(g.Max)}.Bound()
	default:
		panic(fmt.Sprintf("geo: unsupported geometry type %T", g))
	}
}

func points[S ~[]orb.Point](in S, proj orb.Projection) []orb.Point {
	out := make([]orb.Point, len(in))
	for i, p := range in {
		out[i] = proj(p)
	}
	return out
}

func ring(r orb.Ring, proj orb.Projection) orb.Ring {
	return orb.Ring(points(r, proj))
}

func polygon(p orb.Polygon, proj orb.Projection) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		out[i] = ring(r, proj)
	}
	return out
}
