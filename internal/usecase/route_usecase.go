package usecase

import (
	"context"

	"roost/internal/domain/entity"
)

// RouteRequest identifies one directions lookup.
type RouteRequest struct {
	OriginLat      float64
	OriginLng      float64
	DestinationLat float64
	DestinationLng float64
	Profile        entity.TravelProfile // Empty selects the configured default.

	// AssociatedLocationID optionally links the cached entry to a listing.
	AssociatedLocationID string
}

// RouteUsecase is the cache-first directions surface.
type RouteUsecase interface {
	// GetRoute answers from the route cache when a fuzzy match exists and
	// is unexpired; otherwise it computes the route via the directions
	// provider, caches it, and returns it. Concurrent misses on the same
	// key coalesce into one provider call.
	GetRoute(ctx context.Context, req RouteRequest) (*entity.RouteEntry, error)

	// EvictUnpopular runs the maintenance sweep: entries below the
	// configured hit-count floor that are older than the retention
	// threshold are removed even when the cache is under capacity.
	EvictUnpopular(ctx context.Context) (int64, error)

	// ClearRoutes empties the route cache.
	ClearRoutes(ctx context.Context) error
}
