package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// AreaKm2 returns the spherical area of a geographic geometry in square
// kilometers, rounded to two decimals. Non-areal geometries yield zero.
func AreaKm2(g orb.Geometry) float64 {
	if g == nil {
		return 0
	}
	return Round2(orbgeo.Area(g) / 1e6)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
