// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"roost/internal/domain/entity"
	"roost/internal/errors"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found in the local store.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationQuery is the declarative filter applied by FindAll. Zero values
// mean "no constraint" for the respective dimension.
type LocationQuery struct {
	Kinds        []entity.Kind // Membership filter; empty matches every kind.
	Availability []entity.Availability
	PriceMin     *float64 // Inclusive lower price bound.
	PriceMax     *float64 // Inclusive upper price bound.
	RatingFloor  *float64 // Minimum rating; only applied to rated records.
	Amenities    *entity.Amenities // Conjunction: every set flag must be present.
	Bookmarked   *bool

	// Rectangular pre-filter over coordinates.
	MinLat, MaxLat *float64
	MinLng, MaxLng *float64

	// Recency thresholds.
	CachedAfter  *time.Time
	UpdatedAfter *time.Time
}

// LocationStats is the cheap aggregate view over the store.
type LocationStats struct {
	TotalCount  int64                 `json:"total_count"`
	CountByKind map[entity.Kind]int64 `json:"count_by_kind"`
}

// LocationRepository defines the contract for the durable local store of
// cached accommodation records. All writes are idempotent on id.
type LocationRepository interface {
	// Upsert replaces the record with the same id entirely (last-writer-wins).
	Upsert(ctx context.Context, loc *entity.Location) error

	// UpsertMany applies Upsert to each record in one transaction.
	UpsertMany(ctx context.Context, locs []*entity.Location) error

	// FindByID retrieves a record by id. Returns ErrLocationNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Location, error)

	// FindAll retrieves every record matching the query, unordered.
	FindAll(ctx context.Context, q LocationQuery) ([]*entity.Location, error)

	// Delete removes a record by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error

	// EvictExpired deletes all non-bookmarked records cached before cutoff
	// and returns the number of deleted rows.
	EvictExpired(ctx context.Context, cutoff time.Time) (int64, error)

	// EvictAllNonBookmarked hard-resets the store except bookmarked records.
	EvictAllNonBookmarked(ctx context.Context) (int64, error)

	// Stats returns total and per-kind record counts.
	Stats(ctx context.Context) (*LocationStats, error)

	// SetBookmark flips the bookmark flag on a record.
	SetBookmark(ctx context.Context, id string, bookmarked bool) error

	// UpdateAvailability mutates a record's availability in place.
	UpdateAvailability(ctx context.Context, id string, availability entity.Availability) error

	// UpdateRating mutates a record's rating and rating count in place.
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
}
