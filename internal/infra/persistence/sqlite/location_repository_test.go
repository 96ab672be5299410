package sqlite

import (
	"context"
	"testing"
	"time"

	"roost/internal/domain/entity"
	"roost/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func floatPtr(v float64) *float64 { return &v }

func sampleLocation(id string) *entity.Location {
	now := time.Now()

	return &entity.Location{
		ID:               id,
		Name:             "Sunrise PG",
		Kind:             entity.KindPG,
		Latitude:         21.1938,
		Longitude:        81.2858,
		PriceMonthly:     floatPtr(7200),
		Rating:           4.1,
		RatingCount:      18,
		GenderPreference: "Any",
		Amenities:        entity.Amenities{WiFi: true, Meals: true},
		Availability:     entity.AvailabilityOpen,
		Verified:         true,
		CachedAt:         now,
		UpdatedAt:        now,
	}
}

func TestLocationRepository_UpsertAndFindByID(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	loc := sampleLocation("loc-1")
	require.NoError(t, repo.Upsert(ctx, loc))

	found, err := repo.FindByID(ctx, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, loc.Name, found.Name)
	assert.Equal(t, loc.Kind, found.Kind)
	assert.Equal(t, loc.Latitude, found.Latitude)
	assert.Equal(t, loc.Longitude, found.Longitude)
	require.NotNil(t, found.PriceMonthly)
	assert.Equal(t, *loc.PriceMonthly, *found.PriceMonthly)
	assert.Equal(t, loc.Amenities, found.Amenities)
	assert.True(t, found.Verified)
}

func TestLocationRepository_UpsertReplacesWholeRecord(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleLocation("loc-1")))

	updated := sampleLocation("loc-1")
	updated.Name = "Renamed PG"
	updated.PriceMonthly = nil
	updated.Availability = entity.AvailabilityFull
	require.NoError(t, repo.Upsert(ctx, updated))

	found, err := repo.FindByID(ctx, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed PG", found.Name)
	assert.Nil(t, found.PriceMonthly)
	assert.Equal(t, entity.AvailabilityFull, found.Availability)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalCount)
}

func TestLocationRepository_FindByID_NotFound(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestLocationRepository_UpsertMany(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	batch := []*entity.Location{
		sampleLocation("loc-1"),
		sampleLocation("loc-2"),
		sampleLocation("loc-3"),
	}
	require.NoError(t, repo.UpsertMany(ctx, batch))

	// Re-ingesting the same batch must not duplicate
	require.NoError(t, repo.UpsertMany(ctx, batch))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalCount)
}

func TestLocationRepository_FindAll_Filters(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	pg := sampleLocation("pg-cheap")
	pg.PriceMonthly = floatPtr(4500)

	mess := sampleLocation("mess-1")
	mess.Kind = entity.KindMess
	mess.PriceMonthly = floatPtr(2800)
	mess.Amenities = entity.Amenities{Meals: true}

	unpriced := sampleLocation("pg-unpriced")
	unpriced.PriceMonthly = nil

	unrated := sampleLocation("pg-unrated")
	unrated.Rating = 0
	unrated.RatingCount = 0

	require.NoError(t, repo.UpsertMany(ctx, []*entity.Location{pg, mess, unpriced, unrated}))

	t.Run("by kind", func(t *testing.T) {
		locs, err := repo.FindAll(ctx, repository.LocationQuery{
			Kinds: []entity.Kind{entity.KindMess},
		})
		require.NoError(t, err)
		require.Len(t, locs, 1)
		assert.Equal(t, "mess-1", locs[0].ID)
	})

	t.Run("price range excludes unpriced", func(t *testing.T) {
		locs, err := repo.FindAll(ctx, repository.LocationQuery{
			PriceMin: floatPtr(3000),
			PriceMax: floatPtr(8000),
		})
		require.NoError(t, err)

		ids := locationIDs(locs)
		assert.NotContains(t, ids, "pg-unpriced")
		assert.NotContains(t, ids, "mess-1")
		assert.Contains(t, ids, "pg-cheap")
	})

	t.Run("rating floor excludes unrated", func(t *testing.T) {
		locs, err := repo.FindAll(ctx, repository.LocationQuery{
			RatingFloor: floatPtr(4.0),
		})
		require.NoError(t, err)

		ids := locationIDs(locs)
		assert.NotContains(t, ids, "pg-unrated")
		assert.Contains(t, ids, "pg-cheap")
	})

	t.Run("amenity conjunction", func(t *testing.T) {
		locs, err := repo.FindAll(ctx, repository.LocationQuery{
			Amenities: &entity.Amenities{WiFi: true, Meals: true},
		})
		require.NoError(t, err)

		// mess-1 has meals but no wifi
		ids := locationIDs(locs)
		assert.NotContains(t, ids, "mess-1")
		assert.Contains(t, ids, "pg-cheap")
	})

	t.Run("bounding box", func(t *testing.T) {
		outside := sampleLocation("pg-outside")
		outside.Latitude = 21.35
		require.NoError(t, repo.Upsert(ctx, outside))

		minLat, maxLat := 21.18, 21.21
		minLng, maxLng := 81.27, 81.30
		locs, err := repo.FindAll(ctx, repository.LocationQuery{
			MinLat: &minLat, MaxLat: &maxLat,
			MinLng: &minLng, MaxLng: &maxLng,
		})
		require.NoError(t, err)
		assert.NotContains(t, locationIDs(locs), "pg-outside")
	})

	t.Run("combined kind and price", func(t *testing.T) {
		locs, err := repo.FindAll(ctx, repository.LocationQuery{
			Kinds:    []entity.Kind{entity.KindPG},
			PriceMax: floatPtr(8000),
		})
		require.NoError(t, err)
		for _, loc := range locs {
			assert.Equal(t, entity.KindPG, loc.Kind)
			require.NotNil(t, loc.PriceMonthly)
			assert.LessOrEqual(t, *loc.PriceMonthly, 8000.0)
		}
	})
}

func TestLocationRepository_EvictExpired_BookmarkedSurvive(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	old := sampleLocation("old-plain")
	old.CachedAt = time.Now().Add(-10 * 24 * time.Hour)

	oldBookmarked := sampleLocation("old-bookmarked")
	oldBookmarked.CachedAt = time.Now().Add(-10 * 24 * time.Hour)
	oldBookmarked.Bookmarked = true

	fresh := sampleLocation("fresh")

	require.NoError(t, repo.UpsertMany(ctx, []*entity.Location{old, oldBookmarked, fresh}))

	deleted, err := repo.EvictExpired(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByID(ctx, "old-plain")
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)

	_, err = repo.FindByID(ctx, "old-bookmarked")
	assert.NoError(t, err)

	_, err = repo.FindByID(ctx, "fresh")
	assert.NoError(t, err)
}

func TestLocationRepository_EvictAllNonBookmarked(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	bookmarked := sampleLocation("keep")
	bookmarked.Bookmarked = true
	require.NoError(t, repo.UpsertMany(ctx, []*entity.Location{
		sampleLocation("drop-1"), sampleLocation("drop-2"), bookmarked,
	}))

	deleted, err := repo.EvictAllNonBookmarked(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalCount)
}

func TestLocationRepository_Stats_CountsByKind(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	mess := sampleLocation("mess-1")
	mess.Kind = entity.KindMess
	require.NoError(t, repo.UpsertMany(ctx, []*entity.Location{
		sampleLocation("pg-1"), sampleLocation("pg-2"), mess,
	}))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalCount)
	assert.Equal(t, int64(2), stats.CountByKind[entity.KindPG])
	assert.Equal(t, int64(1), stats.CountByKind[entity.KindMess])
}

func TestLocationRepository_Mutations(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleLocation("loc-1")))

	require.NoError(t, repo.SetBookmark(ctx, "loc-1", true))
	require.NoError(t, repo.UpdateAvailability(ctx, "loc-1", entity.AvailabilityLimited))
	require.NoError(t, repo.UpdateRating(ctx, "loc-1", 4.6, 25))

	found, err := repo.FindByID(ctx, "loc-1")
	require.NoError(t, err)
	assert.True(t, found.Bookmarked)
	assert.Equal(t, entity.AvailabilityLimited, found.Availability)
	assert.Equal(t, 4.6, found.Rating)
	assert.Equal(t, 25, found.RatingCount)
}

func TestLocationRepository_Mutations_NotFound(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, repo.SetBookmark(ctx, "missing", true), repository.ErrLocationNotFound)
	assert.ErrorIs(t, repo.UpdateAvailability(ctx, "missing", entity.AvailabilityOpen), repository.ErrLocationNotFound)
	assert.ErrorIs(t, repo.UpdateRating(ctx, "missing", 4.0, 1), repository.ErrLocationNotFound)
}

func TestLocationRepository_Delete_AbsentIsNoOp(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, "missing"))

	require.NoError(t, repo.Upsert(ctx, sampleLocation("loc-1")))
	require.NoError(t, repo.Delete(ctx, "loc-1"))

	_, err := repo.FindByID(ctx, "loc-1")
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func locationIDs(locs []*entity.Location) []string {
	ids := make([]string, 0, len(locs))
	for _, loc := range locs {
		ids = append(ids, loc.ID)
	}

	return ids
}
