// Package service declares the external collaborators the core depends on.
package service

import (
	"context"

	"roost/internal/domain/entity"
	"roost/internal/errors"
)

// ErrRemoteNotFound is returned when the remote source does not know an id.
var ErrRemoteNotFound = errors.New("record not found on remote source")

// RemoteSource is the upstream source of truth for accommodation records.
// Implementations deserialize raw payloads into entities; region validation
// happens after fetch, at ingestion.
type RemoteSource interface {
	// FetchAll retrieves every record, optionally restricted to one kind.
	// A nil kind fetches all kinds.
	FetchAll(ctx context.Context, kind *entity.Kind) ([]*entity.Location, error)

	// FetchByID retrieves a single record. Returns ErrRemoteNotFound when
	// the remote does not know the id.
	FetchByID(ctx context.Context, id string) (*entity.Location, error)

	// FetchNearby retrieves records around a center point.
	FetchNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*entity.Location, error)
}
