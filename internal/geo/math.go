package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// TileSize is the pixel edge of a Web Mercator tile at zoom 0.
const TileSize = 256

// MaxLat is the latitude limit of the Web Mercator square.
const MaxLat = 85.05112878

// zoomEpsilon absorbs rounding so an exact fit keeps its zoom level.
const zoomEpsilon = 1e-9

// Size is a viewport size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Viewport is a map view: center [lon, lat] and integer zoom.
type Viewport struct {
	Center orb.Point `json:"center"`
	Bounds orb.Bound `json:"-"`
	Zoom   int       `json:"zoom"`
}

// FitBounds returns the highest zoom at which b fits inside size minus a
// padding on every side, centered on b. Zoom is floored and clamped to
// [0, maxZoom].
func FitBounds(b orb.Bound, size Size, padding, maxZoom int) Viewport {
	minX, maxY := mercator(b.Min)
	maxX, minY := mercator(b.Max)

	center := inverseMercator((minX+maxX)/2, (minY+maxY)/2)
	vp := Viewport{Center: center, Bounds: b, Zoom: maxZoom}

	w := float64(size.Width - 2*padding)
	h := float64(size.Height - 2*padding)
	if w <= 0 || h <= 0 {
		vp.Zoom = 0
		return vp
	}

	dx := (maxX - minX) * TileSize
	dy := (maxY - minY) * TileSize
	if dx == 0 && dy == 0 {
		return vp
	}

	scale := math.Inf(1)
	if dx > 0 {
		scale = w / dx
	}
	if dy > 0 {
		scale = math.Min(scale, h/dy)
	}

	zoom := int(math.Floor(math.Log2(scale) + zoomEpsilon))
	if zoom < 0 {
		zoom = 0
	}
	if zoom < maxZoom {
		vp.Zoom = zoom
	}

	return vp
}

// mercator maps [lon, lat] onto the unit Web Mercator square, y growing south.
func mercator(p orb.Point) (x, y float64) {
	lat := math.Max(-MaxLat, math.Min(MaxLat, p[1]))
	x = (p[0] + 180) / 360
	sin := math.Sin(deg2rad(lat))
	y = 0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)
	return x, y
}

// inverseMercator is the inverse of mercator.
func inverseMercator(x, y float64) orb.Point {
	lon := x*360 - 180
	latRad := 2*math.Atan(math.Exp((0.5-y)*2*math.Pi)) - math.Pi/2
	return orb.Point{lon, rad2deg(latRad)}
}
