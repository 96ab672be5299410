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

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Upsert replaces the record with the same id entirely (last-writer-wins).
func (repo *locationRepository) Upsert(ctx context.Context, loc *entity.Location) error {
	locM := fromLocationDomain(loc)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(locM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to upsert location")
	}

	return nil
}

// UpsertMany applies Upsert to each record in one transaction.
func (repo *locationRepository) UpsertMany(ctx context.Context, locs []*entity.Location) error {
	if len(locs) == 0 {
		return nil
	}

	locModels := make([]*model.LocationModel, 0, len(locs))
	for _, loc := range locs {
		locModels = append(locModels, fromLocationDomain(loc))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			CreateInBatches(locModels, 100).Error
	})
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to upsert locations")
	}

	return nil
}

// FindByID retrieves a record by id.
func (repo *locationRepository) FindByID(ctx context.Context, id string) (*entity.Location, error) {
	var locM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locM), nil
}

// FindAll retrieves every record matching the query, unordered.
func (repo *locationRepository) FindAll(ctx context.Context, q repository.LocationQuery) ([]*entity.Location, error) {
	var locModels []*model.LocationModel

	if err := applyLocationQuery(repo.db.WithContext(ctx), q).
		Find(&locModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	locs := make([]*entity.Location, 0, len(locModels))
	for _, locM := range locModels {
		locs = append(locs, toLocationDomain(locM))
	}

	return locs, nil
}

// applyLocationQuery translates the declarative query into WHERE clauses.
func applyLocationQuery(tx *gorm.DB, q repository.LocationQuery) *gorm.DB {
	if len(q.Kinds) > 0 {
		kinds := make([]string, 0, len(q.Kinds))
		for _, k := range q.Kinds {
			kinds = append(kinds, string(k))
		}
		tx = tx.Where("kind IN ?", kinds)
	}
	if len(q.Availability) > 0 {
		avail := make([]string, 0, len(q.Availability))
		for _, a := range q.Availability {
			avail = append(avail, string(a))
		}
		tx = tx.Where("availability IN ?", avail)
	}
	if q.PriceMin != nil {
		tx = tx.Where("price_monthly IS NOT NULL AND price_monthly >= ?", *q.PriceMin)
	}
	if q.PriceMax != nil {
		tx = tx.Where("price_monthly IS NOT NULL AND price_monthly <= ?", *q.PriceMax)
	}
	if q.RatingFloor != nil {
		// Unrated records carry no ranking signal and never satisfy a floor
		tx = tx.Where("rating_count > 0 AND rating >= ?", *q.RatingFloor)
	}
	if q.Amenities != nil {
		tx = applyAmenityFilter(tx, q.Amenities)
	}
	if q.Bookmarked != nil {
		tx = tx.Where("bookmarked = ?", *q.Bookmarked)
	}
	if q.MinLat != nil {
		tx = tx.Where("latitude >= ?", *q.MinLat)
	}
	if q.MaxLat != nil {
		tx = tx.Where("latitude <= ?", *q.MaxLat)
	}
	if q.MinLng != nil {
		tx = tx.Where("longitude >= ?", *q.MinLng)
	}
	if q.MaxLng != nil {
		tx = tx.Where("longitude <= ?", *q.MaxLng)
	}
	if q.CachedAfter != nil {
		tx = tx.Where("cached_at >= ?", *q.CachedAfter)
	}
	if q.UpdatedAfter != nil {
		tx = tx.Where("updated_at >= ?", *q.UpdatedAfter)
	}

	return tx
}

// applyAmenityFilter requires every requested amenity flag (conjunction).
func applyAmenityFilter(tx *gorm.DB, a *entity.Amenities) *gorm.DB {
	if a.WiFi {
		tx = tx.Where("wi_fi = ?", true)
	}
	if a.StudyDesk {
		tx = tx.Where("study_desk = ?", true)
	}
	if a.Meals {
		tx = tx.Where("meals = ?", true)
	}
	if a.Laundry {
		tx = tx.Where("laundry = ?", true)
	}
	if a.Gym {
		tx = tx.Where("gym = ?", true)
	}
	if a.Parking {
		tx = tx.Where("parking = ?", true)
	}
	if a.AC {
		tx = tx.Where("ac = ?", true)
	}
	if a.Attached {
		tx = tx.Where("attached = ?", true)
	}

	return tx
}

// Delete removes a record by id. Deleting an absent id is a no-op.
func (repo *locationRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to delete location")
	}

	return nil
}

// EvictExpired deletes all non-bookmarked records cached before cutoff.
func (repo *locationRepository) EvictExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("cached_at < ? AND bookmarked = ?", cutoff, false).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "failed to evict expired locations")
	}

	return result.RowsAffected, nil
}

// EvictAllNonBookmarked hard-resets the store except bookmarked records.
func (repo *locationRepository) EvictAllNonBookmarked(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("bookmarked = ?", false).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "failed to evict locations")
	}

	return result.RowsAffected, nil
}

// Stats returns total and per-kind record counts.
func (repo *locationRepository) Stats(ctx context.Context) (*repository.LocationStats, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count locations")
	}

	var rows []struct {
		Kind  string
		Count int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("kind, count(*) as count").
		Group("kind").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count locations by kind")
	}

	stats := &repository.LocationStats{
		TotalCount:  total,
		CountByKind: make(map[entity.Kind]int64, len(rows)),
	}
	for _, row := range rows {
		stats.CountByKind[entity.Kind(row.Kind)] = row.Count
	}

	return stats, nil
}

// SetBookmark flips the bookmark flag on a record.
func (repo *locationRepository) SetBookmark(ctx context.Context, id string, bookmarked bool) error {
	return repo.updateFields(ctx, id, map[string]any{
		"bookmarked": bookmarked,
		"updated_at": time.Now(),
	}, "failed to set bookmark")
}

// UpdateAvailability mutates a record's availability in place.
func (repo *locationRepository) UpdateAvailability(ctx context.Context, id string, availability entity.Availability) error {
	return repo.updateFields(ctx, id, map[string]any{
		"availability": string(availability),
		"updated_at":   time.Now(),
	}, "failed to update availability")
}

// UpdateRating mutates a record's rating and rating count in place.
func (repo *locationRepository) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	return repo.updateFields(ctx, id, map[string]any{
		"rating":       rating,
		"rating_count": count,
		"updated_at":   time.Now(),
	}, "failed to update rating")
}

func (repo *locationRepository) updateFields(ctx context.Context, id string, fields map[string]any, failMsg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, failMsg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:               data.ID,
		Name:             data.Name,
		Kind:             entity.Kind(data.Kind),
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		PriceMonthly:     data.PriceMonthly,
		Rating:           data.Rating,
		RatingCount:      data.RatingCount,
		GenderPreference: data.GenderPreference,
		Amenities: entity.Amenities{
			WiFi:      data.WiFi,
			StudyDesk: data.StudyDesk,
			Meals:     data.Meals,
			Laundry:   data.Laundry,
			Gym:       data.Gym,
			Parking:   data.Parking,
			AC:        data.AC,
			Attached:  data.Attached,
		},
		Availability: entity.Availability(data.Availability),
		Verified:     data.Verified,
		Featured:     data.Featured,
		Bookmarked:   data.Bookmarked,
		CachedAt:     data.CachedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:               data.ID,
		Name:             data.Name,
		Kind:             string(data.Kind),
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		PriceMonthly:     data.PriceMonthly,
		Rating:           data.Rating,
		RatingCount:      data.RatingCount,
		GenderPreference: data.GenderPreference,
		WiFi:             data.Amenities.WiFi,
		StudyDesk:        data.Amenities.StudyDesk,
		Meals:            data.Amenities.Meals,
		Laundry:          data.Amenities.Laundry,
		Gym:              data.Amenities.Gym,
		Parking:          data.Amenities.Parking,
		AC:               data.Amenities.AC,
		Attached:         data.Amenities.Attached,
		Availability:     string(data.Availability),
		Verified:         data.Verified,
		Featured:         data.Featured,
		Bookmarked:       data.Bookmarked,
		CachedAt:         data.CachedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
