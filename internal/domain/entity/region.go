package entity

import "github.com/paulmach/orb"

// Region is the configured service area. Ingestion rejects any record whose
// coordinates fall outside it.
type Region struct {
	Name  string
	Bound orb.Bound
}

// NewRegion builds a region from its corner coordinates.
func NewRegion(name string, minLat, minLng, maxLat, maxLng float64) Region {
	return Region{
		Name: name,
		Bound: orb.Bound{
			Min: orb.Point{minLng, minLat},
			Max: orb.Point{maxLng, maxLat},
		},
	}
}

// Contains reports whether the coordinate pair lies within the region.
func (r Region) Contains(lat, lng float64) bool {
	return r.Bound.Contains(orb.Point{lng, lat})
}
