package sqlite

import (
	"context"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// Lookup finds an unexpired entry whose endpoints both fall within
// toleranceDeg of the requested coordinates for the same profile. The hit
// bump is a single UPDATE so concurrent lookups on the same key cannot lose
// increments.
func (repo *routeRepository) Lookup(ctx context.Context, originLat, originLng, destLat, destLng float64, profile entity.TravelProfile, toleranceDeg float64) (*entity.RouteEntry, error) {
	now := time.Now()

	var routeM model.RouteModel
	err := repo.db.WithContext(ctx).
		Where("profile = ?", string(profile)).
		Where("origin_lat BETWEEN ? AND ?", originLat-toleranceDeg, originLat+toleranceDeg).
		Where("origin_lng BETWEEN ? AND ?", originLng-toleranceDeg, originLng+toleranceDeg).
		Where("destination_lat BETWEEN ? AND ?", destLat-toleranceDeg, destLat+toleranceDeg).
		Where("destination_lng BETWEEN ? AND ?", destLng-toleranceDeg, destLng+toleranceDeg).
		Where("expires_at > ?", now).
		Order("cached_at DESC").
		First(&routeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to look up route")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Where(routeKeySQL, routeKeyArgs(&routeM)...).
		Updates(map[string]any{
			"hit_count":        gorm.Expr("hit_count + 1"),
			"last_accessed_at": now,
		})
	if result.Error != nil {
		return nil, domainerrors.NewStorageError(result.Error, "failed to record route hit")
	}

	routeM.HitCount++
	routeM.LastAccessedAt = now

	return toRouteDomain(&routeM), nil
}

// Insert upserts by the exact rounded key.
func (repo *routeRepository) Insert(ctx context.Context, entry *entity.RouteEntry, carryHitCount bool) error {
	if !entry.ExpiresAt.After(entry.CachedAt) {
		return repository.ErrInvalidRouteEntry
	}

	entry.NormalizeKey()
	routeM := fromRouteDomain(entry)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if carryHitCount {
			var prev model.RouteModel
			err := tx.Where(routeKeySQL, routeKeyArgs(routeM)...).First(&prev).Error
			switch {
			case err == nil:
				routeM.HitCount = prev.HitCount
			case errors.Is(err, gorm.ErrRecordNotFound):
				// nothing to carry
			default:
				return err
			}
		} else {
			routeM.HitCount = 0
		}

		return tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "origin_lat"}, {Name: "origin_lng"},
					{Name: "destination_lat"}, {Name: "destination_lng"},
					{Name: "profile"},
				},
				UpdateAll: true,
			}).
			Create(routeM).Error
	})
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to insert route")
	}

	entry.HitCount = routeM.HitCount

	return nil
}

// Count returns the number of stored entries.
func (repo *routeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count routes")
	}

	return count, nil
}

// DeleteExpired removes every entry past its lifetime.
func (repo *routeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.RouteModel{})

	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "failed to delete expired routes")
	}

	return result.RowsAffected, nil
}

// DeleteLeastPopular removes n entries ranked by (HitCount asc,
// LastAccessedAt asc).
func (repo *routeRepository) DeleteLeastPopular(ctx context.Context, n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Exec(
		`DELETE FROM routes WHERE rowid IN (
			SELECT rowid FROM routes
			ORDER BY hit_count ASC, last_accessed_at ASC
			LIMIT ?
		)`, n)

	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "failed to delete least popular routes")
	}

	return result.RowsAffected, nil
}

// DeleteUnpopular removes entries below the hit-count floor cached before cutoff.
func (repo *routeRepository) DeleteUnpopular(ctx context.Context, minHitCount int, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("hit_count < ? AND cached_at < ?", minHitCount, cutoff).
		Delete(&model.RouteModel{})

	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "failed to delete unpopular routes")
	}

	return result.RowsAffected, nil
}

// Clear removes every entry.
func (repo *routeRepository) Clear(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.RouteModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to clear routes")
	}

	return nil
}

// routeKeySQL matches a row by its full composite key.
const routeKeySQL = "origin_lat = ? AND origin_lng = ? AND destination_lat = ? AND destination_lng = ? AND profile = ?"

func routeKeyArgs(m *model.RouteModel) []any {
	return []any{m.OriginLat, m.OriginLng, m.DestinationLat, m.DestinationLng, m.Profile}
}

// --- Mapper Functions ---

// toRouteDomain converts a GORM RouteModel to a domain RouteEntry.
func toRouteDomain(data *model.RouteModel) *entity.RouteEntry {
	if data == nil {
		return nil
	}

	return &entity.RouteEntry{
		OriginLat:            data.OriginLat,
		OriginLng:            data.OriginLng,
		DestinationLat:       data.DestinationLat,
		DestinationLng:       data.DestinationLng,
		Profile:              entity.TravelProfile(data.Profile),
		DurationSeconds:      data.DurationSeconds,
		DistanceMeters:       data.DistanceMeters,
		PeakDuration:         data.PeakDuration,
		OffPeakDuration:      data.OffPeakDuration,
		Congestion:           entity.CongestionLevel(data.Congestion),
		HitCount:             data.HitCount,
		CachedAt:             data.CachedAt,
		LastAccessedAt:       data.LastAccessedAt,
		ExpiresAt:            data.ExpiresAt,
		PassesNearTransitHub: data.PassesNearTransitHub,
		PassesNearPOI:        data.PassesNearPOI,
		AssociatedLocationID: data.AssociatedLocationID,
	}
}

// fromRouteDomain converts a domain RouteEntry to a GORM RouteModel.
func fromRouteDomain(data *entity.RouteEntry) *model.RouteModel {
	if data == nil {
		return nil
	}

	return &model.RouteModel{
		OriginLat:            data.OriginLat,
		OriginLng:            data.OriginLng,
		DestinationLat:       data.DestinationLat,
		DestinationLng:       data.DestinationLng,
		Profile:              string(data.Profile),
		DurationSeconds:      data.DurationSeconds,
		DistanceMeters:       data.DistanceMeters,
		PeakDuration:         data.PeakDuration,
		OffPeakDuration:      data.OffPeakDuration,
		Congestion:           string(data.Congestion),
		HitCount:             data.HitCount,
		CachedAt:             data.CachedAt,
		LastAccessedAt:       data.LastAccessedAt,
		ExpiresAt:            data.ExpiresAt,
		PassesNearTransitHub: data.PassesNearTransitHub,
		PassesNearPOI:        data.PassesNearPOI,
		AssociatedLocationID: data.AssociatedLocationID,
	}
}
