package entity

import (
	"math"
	"time"
)

// TravelProfile selects the travel mode for a route.
type TravelProfile string

const (
	ProfileDriving TravelProfile = "driving"
	ProfileWalking TravelProfile = "walking"
	ProfileTransit TravelProfile = "transit"
)

// CongestionLevel grades traffic along a cached route.
type CongestionLevel string

const (
	CongestionLow      CongestionLevel = "low"
	CongestionModerate CongestionLevel = "moderate"
	CongestionHeavy    CongestionLevel = "heavy"
	CongestionUnknown  CongestionLevel = "unknown"
)

// RouteKeyPrecision is the coordinate rounding applied to route cache keys.
// 4 decimal places is roughly 11 m at the equator.
const RouteKeyPrecision = 4

// RouteEntry is one cached directions result, keyed by the rounded
// origin/destination pair and the travel profile.
type RouteEntry struct {
	OriginLat       float64         `json:"origin_lat"`       // Rounded origin latitude (key component).
	OriginLng       float64         `json:"origin_lng"`       // Rounded origin longitude (key component).
	DestinationLat  float64         `json:"destination_lat"`  // Rounded destination latitude (key component).
	DestinationLng  float64         `json:"destination_lng"`  // Rounded destination longitude (key component).
	Profile         TravelProfile   `json:"profile"`          // Travel mode (key component).
	DurationSeconds int             `json:"duration_seconds"` // Typical travel time.
	DistanceMeters  float64         `json:"distance_meters"`  // Route length.
	PeakDuration    *int            `json:"peak_duration"`    // Travel time at peak traffic; nil when unknown.
	OffPeakDuration *int            `json:"off_peak_duration"`
	Congestion      CongestionLevel `json:"congestion"`
	HitCount        int             `json:"hit_count"`        // Times this entry answered a lookup.
	CachedAt        time.Time       `json:"cached_at"`
	LastAccessedAt  time.Time       `json:"last_accessed_at"`
	ExpiresAt       time.Time       `json:"expires_at"`

	// Weak associations; lookup hints only, no ownership.
	PassesNearTransitHub bool   `json:"passes_near_transit_hub"`
	PassesNearPOI        bool   `json:"passes_near_poi"`
	AssociatedLocationID string `json:"associated_location_id"`
}

// RoundCoord rounds a coordinate to the route-key precision.
func RoundCoord(v float64) float64 {
	scale := math.Pow(10, RouteKeyPrecision)

	return math.Round(v*scale) / scale
}

// NormalizeKey rounds the endpoint coordinates in place so the entry stores
// under its canonical key.
func (e *RouteEntry) NormalizeKey() {
	e.OriginLat = RoundCoord(e.OriginLat)
	e.OriginLng = RoundCoord(e.OriginLng)
	e.DestinationLat = RoundCoord(e.DestinationLat)
	e.DestinationLng = RoundCoord(e.DestinationLng)
}

// Expired reports whether the entry is past its lifetime at the given instant.
func (e *RouteEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}
