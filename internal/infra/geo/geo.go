// Package geo provides great-circle distance and bounding-box helpers used
// by the search engine and the route cache.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthRadiusKm = 6371.0

	// kmPerDegreeLat is the approximate north-south span of one degree.
	kmPerDegreeLat = 111.0
)

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// Distance calculates the great circle distance between two points in meters
// using the haversine formula on a spherical earth.
func Distance(a, b Point) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lng1Rad := a.Lng * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	lng2Rad := b.Lng * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c * 1000
}

// DistanceKm is Distance in kilometers.
func DistanceKm(a, b Point) float64 {
	return Distance(a, b) / 1000
}

// BoundingTolerance converts a radius in kilometers to degree tolerances
// around a center latitude. Longitude compresses by cos(lat), so the same
// radius covers more degrees east-west away from the equator.
func BoundingTolerance(centerLat, radiusKm float64) (latDeg, lngDeg float64) {
	latDeg = radiusKm / kmPerDegreeLat
	lngDeg = radiusKm / (kmPerDegreeLat * math.Cos(centerLat*math.Pi/180))

	return latDeg, lngDeg
}

// WithinBoundingBox is the cheap rectangular pre-filter evaluated before the
// exact distance check.
func WithinBoundingBox(p, center Point, latToleranceDeg, lngToleranceDeg float64) bool {
	return math.Abs(p.Lat-center.Lat) <= latToleranceDeg &&
		math.Abs(p.Lng-center.Lng) <= lngToleranceDeg
}

// Bound builds the rectangle covering radiusKm around center. Candidates
// outside it cannot be within the radius, so it shrinks the candidate set
// ahead of the exact haversine check.
func Bound(center Point, radiusKm float64) orb.Bound {
	latDeg, lngDeg := BoundingTolerance(center.Lat, radiusKm)

	return orb.Bound{
		Min: orb.Point{center.Lng - lngDeg, center.Lat - latDeg},
		Max: orb.Point{center.Lng + lngDeg, center.Lat + latDeg},
	}
}
