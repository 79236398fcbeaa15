// Package geo handles coordinate reprojection, geodesic area and viewport math.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// WGS84 ellipsoid and UTM grid constants.
const (
	semiMajor      = 6378137.0
	flattening     = 1 / 298.257223563
	scaleFactor    = 0.9996
	falseEasting   = 500000.0
	falseNorthingS = 10000000.0
)

var (
	ecc2  = flattening * (2 - flattening) // first eccentricity squared
	ecc4  = ecc2 * ecc2
	ecc6  = ecc4 * ecc2
	eccP2 = ecc2 / (1 - ecc2) // second eccentricity squared
)

// UTM is a fixed Universal Transverse Mercator zone on the WGS84 datum.
type UTM struct {
	Zone  int  `yaml:"zone" json:"zone"`
	South bool `yaml:"south,omitempty" json:"south,omitempty"`
}

// Validate reports whether the zone number is usable.
func (u UTM) Validate() error {
	if u.Zone < 1 || u.Zone > 60 {
		return fmt.Errorf("utm zone %d out of range 1..60", u.Zone)
	}
	return nil
}

// String returns the zone in the usual "33N" notation.
func (u UTM) String() string {
	if u.South {
		return fmt.Sprintf("%dS", u.Zone)
	}
	return fmt.Sprintf("%dN", u.Zone)
}

// CentralMeridian returns the zone's central meridian in degrees.
func (u UTM) CentralMeridian() float64 {
	return float64(u.Zone-1)*6 - 180 + 3
}

// Inverse converts an easting/northing pair in meters to [lon, lat] degrees.
func (u UTM) Inverse(p orb.Point) orb.Point {
	x := p[0] - falseEasting
	y := p[1]
	if u.South {
		y -= falseNorthingS
	}

	m := y / scaleFactor
	mu := m / (semiMajor * (1 - ecc2/4 - 3*ecc4/64 - 5*ecc6/256))

	e1 := (1 - math.Sqrt(1-ecc2)) / (1 + math.Sqrt(1-ecc2))
	phi1 := mu +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu) +
		(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu)

	sin1, cos1, tan1 := math.Sin(phi1), math.Cos(phi1), math.Tan(phi1)
	n1 := semiMajor / math.Sqrt(1-ecc2*sin1*sin1)
	t1 := tan1 * tan1
	c1 := eccP2 * cos1 * cos1
	r1 := semiMajor * (1 - ecc2) / math.Pow(1-ecc2*sin1*sin1, 1.5)
	d := x / (n1 * scaleFactor)

	lat := phi1 - (n1*tan1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*eccP2)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*eccP2-3*c1*c1)*math.Pow(d, 6)/720)

	lon := (d -
		(1+2*t1+c1)*math.Pow(d, 3)/6 +
		(5-2*c1+28*t1-3*c1*c1+8*eccP2+24*t1*t1)*math.Pow(d, 5)/120) / cos1

	return orb.Point{u.CentralMeridian() + rad2deg(lon), rad2deg(lat)}
}

// Forward converts a [lon, lat] pair in degrees to easting/northing meters.
func (u UTM) Forward(p orb.Point) orb.Point {
	phi := deg2rad(p[1])
	lambda := deg2rad(p[0] - u.CentralMeridian())

	sinP, cosP, tanP := math.Sin(phi), math.Cos(phi), math.Tan(phi)
	n := semiMajor / math.Sqrt(1-ecc2*sinP*sinP)
	t := tanP * tanP
	c := eccP2 * cosP * cosP
	a := cosP * lambda

	m := semiMajor * ((1-ecc2/4-3*ecc4/64-5*ecc6/256)*phi -
		(3*ecc2/8+3*ecc4/32+45*ecc6/1024)*math.Sin(2*phi) +
		(15*ecc4/256+45*ecc6/1024)*math.Sin(4*phi) -
		(35*ecc6/3072)*math.Sin(6*phi))

	x := scaleFactor*n*(a+
		(1-t+c)*math.Pow(a, 3)/6+
		(5-18*t+t*t+72*c-58*eccP2)*math.Pow(a, 5)/120) + falseEasting

	y := scaleFactor * (m + n*tanP*(a*a/2+
		(5-t+9*c+4*c*c)*math.Pow(a, 4)/24+
		(61-58*t+t*t+600*c-330*eccP2)*math.Pow(a, 6)/720))
	if u.South {
		y += falseNorthingS
	}

	return orb.Point{x, y}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }
