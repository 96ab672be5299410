// Package usecase declares the application-facing interfaces of the core.
package usecase

import (
	"context"
	"strings"

	"roost/internal/domain/entity"
	"roost/internal/domain/repository"
	"roost/internal/infra/geo"
	"roost/internal/usecase/watch"
)

// SortKey selects the comparator for search results.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByPrice    SortKey = "price"
	SortByRating   SortKey = "rating"
)

// ParseSortKey validates a raw sort key. Unknown keys are rejected rather
// than silently defaulted.
func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByDistance, "":
		return SortByDistance, true
	case SortByPrice:
		return SortByPrice, true
	case SortByRating:
		return SortByRating, true
	default:
		return "", false
	}
}

// SearchFilters is the conjunction of constraints applied by Search.
type SearchFilters struct {
	PriceMin         *float64          `json:"price_min"`
	PriceMax         *float64          `json:"price_max"`
	Kinds            []entity.Kind     `json:"kinds"`
	GenderPreference string            `json:"gender_preference"` // "" or "Any" matches everything.
	Amenities        *entity.Amenities `json:"amenities"`         // Every set flag must be present.
	RatingFloor      *float64          `json:"rating_floor"`
	IncludeFull      bool              `json:"include_full"` // Include listings with no free capacity.
}

// SearchUsecase is the read/cache surface for accommodation records.
type SearchUsecase interface {
	// Search executes a filtered, deterministically ordered query against
	// the local store. It never touches the network.
	Search(ctx context.Context, center geo.Point, radiusKm float64, filters SearchFilters, sort SortKey) ([]*entity.Location, error)

	// GetByID checks the local store first and falls back to the remote
	// source, caching the fetched record on success.
	GetByID(ctx context.Context, id string) (*entity.Location, error)

	// Subscribe returns a live sequence of result sets for the query. The
	// current cached set is delivered immediately; later writes that touch
	// the store re-run the query and deliver the fresh set. Cancelling the
	// subscription stops delivery without affecting other subscribers.
	Subscribe(ctx context.Context, q repository.LocationQuery) (*watch.Subscription, error)

	// Ingest validates records against the service region and saves the
	// valid ones. Out-of-region records are dropped.
	Ingest(ctx context.Context, locs []*entity.Location) (int, error)

	// SetBookmark flips the bookmark flag on a cached record.
	SetBookmark(ctx context.Context, id string, bookmarked bool) error

	// UpdateAvailability mutates a cached record's availability.
	UpdateAvailability(ctx context.Context, id string, availability entity.Availability) error

	// UpdateRating mutates a cached record's rating.
	UpdateRating(ctx context.Context, id string, rating float64, count int) error

	// Stats reports total and per-kind cached record counts.
	Stats(ctx context.Context) (*repository.LocationStats, error)

	// EvictExpired removes non-bookmarked records older than the configured
	// retention. Bookmarked records always survive.
	EvictExpired(ctx context.Context) (int64, error)

	// ClearCache removes every non-bookmarked record.
	ClearCache(ctx context.Context) (int64, error)
}
