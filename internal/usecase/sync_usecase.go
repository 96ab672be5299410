package usecase

import (
	"context"
	"fmt"

	"roost/internal/domain/entity"
	"roost/internal/infra/geo"
)

// RefreshScope identifies one logical query whose cached result set can be
// reconciled against the remote source. Concurrent refreshes for the same
// key coalesce into a single remote call.
type RefreshScope struct {
	Kind     *entity.Kind // Restrict to one listing kind; nil means all.
	Center   *geo.Point   // Nearby refresh around this point; nil means region-wide.
	RadiusKm float64      // Only meaningful when Center is set.
}

// Key is the coalescing identity of the scope.
func (s RefreshScope) Key() string {
	switch {
	case s.Center != nil:
		return fmt.Sprintf("nearby:%.4f:%.4f:%.1f", s.Center.Lat, s.Center.Lng, s.RadiusKm)
	case s.Kind != nil:
		return "kind:" + string(*s.Kind)
	default:
		return "all"
	}
}

// SyncUsecase reconciles the local store against the remote source using
// stale-while-revalidate semantics.
type SyncUsecase interface {
	// Refresh fetches the scope from the remote source and merges validated
	// records into the local store. When force is false the fetch is
	// skipped while the cached set is still fresh. A remote failure is
	// swallowed (logged only) when cached data exists for the scope, and
	// surfaces as RemoteUnavailable when the cache is cold.
	Refresh(ctx context.Context, scope RefreshScope, force bool) error

	// RefreshIfStale triggers Refresh in the background when the scope's
	// cached set is stale. It never blocks on network I/O.
	RefreshIfStale(scope RefreshScope)
}
