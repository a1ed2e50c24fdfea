package domain

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Immutable geographic coordinates (longitude, latitude) in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Valid reports whether the latitude is in [-90, 90] and the longitude in
// [-180, 180]. NaN is never valid.
func (c Coordinates) Valid() bool {
	return c.Lat >= MinLatitude && c.Lat <= MaxLatitude &&
		c.Lon >= MinLongitude && c.Lon <= MaxLongitude
}

// Point returns the coordinates as an orb.Point ([lon, lat]).
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// GreatCircleKm returns the haversine distance between a and b in kilometers,
// on a sphere with the WGS-84 semi-major axis as radius.
func GreatCircleKm(a, b Coordinates) float64 {
	if a == b {
		return 0
	}

	m := geo.DistanceHaversine(a.Point(), b.Point())
	if math.IsNaN(m) {
		// Near antipodes rounding can push the haversine term past 1.
		m = clampedHaversine(a, b)
	}
	return m / 1000
}

// clampedHaversine is the haversine distance in meters with the haversine
// term held to [0, 1].
func clampedHaversine(a, b Coordinates) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	sinLat := math.Sin(rad(b.Lat-a.Lat) / 2)
	sinLon := math.Sin(rad(b.Lon-a.Lon) / 2)
	h := sinLat*sinLat + math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*sinLon*sinLon
	h = math.Min(1, math.Max(0, h))

	return 2 * orb.EarthRadius * math.Asin(math.Sqrt(h))
}
