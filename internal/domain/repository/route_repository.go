package repository

import (
	"context"
	"time"

	"roost/internal/domain/entity"
	"roost/internal/errors"
)

// Domain-specific errors for route cache persistence.
var (
	// ErrRouteNotFound is returned when no cached route matches a lookup.
	ErrRouteNotFound = errors.New("route not found")
	// ErrInvalidRouteEntry is returned when an entry violates its lifetime invariant.
	ErrInvalidRouteEntry = errors.New("route entry expires before it is cached")
)

// RouteRepository defines the contract for the directions cache.
type RouteRepository interface {
	// Lookup finds an unexpired entry whose endpoints both fall within
	// toleranceDeg of the requested coordinates for the same profile. Among
	// multiple matches the most recently cached wins. A hit atomically
	// increments HitCount and refreshes LastAccessedAt as part of the
	// lookup. Returns ErrRouteNotFound on miss.
	Lookup(ctx context.Context, originLat, originLng, destLat, destLng float64, profile entity.TravelProfile, toleranceDeg float64) (*entity.RouteEntry, error)

	// Insert upserts by the exact rounded key. A colliding key replaces the
	// previous entry; HitCount resets to 0 unless carryHitCount is set, in
	// which case the previous entry's count is preserved.
	Insert(ctx context.Context, entry *entity.RouteEntry, carryHitCount bool) error

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int64, error)

	// DeleteExpired removes every entry past its lifetime.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// DeleteLeastPopular removes n entries ranked by (HitCount asc,
	// LastAccessedAt asc) and returns the number deleted.
	DeleteLeastPopular(ctx context.Context, n int) (int64, error)

	// DeleteUnpopular removes entries below the hit-count floor that were
	// cached before cutoff.
	DeleteUnpopular(ctx context.Context, minHitCount int, cutoff time.Time) (int64, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
