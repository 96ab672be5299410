package service

import (
	"context"

	"roost/internal/domain/entity"
)

// RouteInfo is the raw result of one directions computation.
type RouteInfo struct {
	DurationSeconds int
	DistanceMeters  float64
	Congestion      entity.CongestionLevel
	PeakDuration    *int
	OffPeakDuration *int
}

// DirectionsProvider computes routes between coordinate pairs. It is the
// only collaborator on the route path; results are cached locally.
type DirectionsProvider interface {
	ComputeRoute(ctx context.Context, originLat, originLng, destLat, destLng float64, profile entity.TravelProfile) (*RouteInfo, error)
}
