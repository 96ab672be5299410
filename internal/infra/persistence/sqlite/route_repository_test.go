package sqlite

import (
	"context"
	"testing"
	"time"

	"roost/internal/domain/entity"
	"roost/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTolerance = 0.001

func sampleRoute(originLat, originLng float64, profile entity.TravelProfile) *entity.RouteEntry {
	now := time.Now()

	return &entity.RouteEntry{
		OriginLat:       originLat,
		OriginLng:       originLng,
		DestinationLat:  21.2514,
		DestinationLng:  81.6296,
		Profile:         profile,
		DurationSeconds: 2400,
		DistanceMeters:  36500,
		Congestion:      entity.CongestionModerate,
		CachedAt:        now,
		LastAccessedAt:  now,
		ExpiresAt:       now.Add(24 * time.Hour),
	}
}

func TestRouteRepository_InsertAndLookup(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	entry := sampleRoute(21.1938, 81.2858, entity.ProfileDriving)
	require.NoError(t, repo.Insert(ctx, entry, false))

	found, err := repo.Lookup(ctx, 21.1938, 81.2858, 21.2514, 81.6296,
		entity.ProfileDriving, testTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2400, found.DurationSeconds)
	assert.Equal(t, float64(36500), found.DistanceMeters)
	assert.Equal(t, entity.CongestionModerate, found.Congestion)
}

func TestRouteRepository_Lookup_BumpsHitCount(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoute(21.1938, 81.2858, entity.ProfileDriving), false))

	for i := 1; i <= 3; i++ {
		found, err := repo.Lookup(ctx, 21.1938, 81.2858, 21.2514, 81.6296,
			entity.ProfileDriving, testTolerance)
		require.NoError(t, err)
		assert.Equal(t, i, found.HitCount)
	}
}

func TestRouteRepository_Lookup_FuzzyMatchWithinTolerance(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoute(21.1938, 81.2858, entity.ProfileDriving), false))

	// Nudge the origin by half the tolerance; still a hit
	found, err := repo.Lookup(ctx, 21.1942, 81.2861, 21.2514, 81.6296,
		entity.ProfileDriving, testTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2400, found.DurationSeconds)

	// Beyond the tolerance misses
	_, err = repo.Lookup(ctx, 21.1990, 81.2858, 21.2514, 81.6296,
		entity.ProfileDriving, testTolerance)
	assert.ErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestRouteRepository_Lookup_ProfileIsPartOfKey(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoute(21.1938, 81.2858, entity.ProfileDriving), false))

	_, err := repo.Lookup(ctx, 21.1938, 81.2858, 21.2514, 81.6296,
		entity.ProfileWalking, testTolerance)
	assert.ErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestRouteRepository_Lookup_ExpiredEntryMisses(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	expired := sampleRoute(21.1938, 81.2858, entity.ProfileDriving)
	expired.CachedAt = time.Now().Add(-48 * time.Hour)
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Insert(ctx, expired, false))

	_, err := repo.Lookup(ctx, 21.1938, 81.2858, 21.2514, 81.6296,
		entity.ProfileDriving, testTolerance)
	assert.ErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestRouteRepository_Insert_RejectsNonPositiveLifetime(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	entry := sampleRoute(21.1938, 81.2858, entity.ProfileDriving)
	entry.ExpiresAt = entry.CachedAt

	assert.ErrorIs(t, repo.Insert(ctx, entry, false), repository.ErrInvalidRouteEntry)
}

func TestRouteRepository_Insert_NormalizesKey(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	// Sub-precision noise in the coordinates collapses onto one key
	entry := sampleRoute(21.19382777, 81.28581111, entity.ProfileDriving)
	require.NoError(t, repo.Insert(ctx, entry, false))
	assert.Equal(t, 21.1938, entry.OriginLat)
	assert.Equal(t, 81.2858, entry.OriginLng)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRouteRepository_Insert_CarryHitCount(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoute(21.1938, 81.2858, entity.ProfileDriving), false))

	for range 3 {
		_, err := repo.Lookup(ctx, 21.1938, 81.2858, 21.2514, 81.6296,
			entity.ProfileDriving, testTolerance)
		require.NoError(t, err)
	}

	// A refreshed result keeps its accumulated popularity
	refreshed := sampleRoute(21.1938, 81.2858, entity.ProfileDriving)
	refreshed.DurationSeconds = 2700
	require.NoError(t, repo.Insert(ctx, refreshed, true))
	assert.Equal(t, 3, refreshed.HitCount)

	found, err := repo.Lookup(ctx, 21.1938, 81.2858, 21.2514, 81.6296,
		entity.ProfileDriving, testTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2700, found.DurationSeconds)
	assert.Equal(t, 4, found.HitCount)

	// Without the carry flag the popularity resets
	reset := sampleRoute(21.1938, 81.2858, entity.ProfileDriving)
	require.NoError(t, repo.Insert(ctx, reset, false))
	assert.Zero(t, reset.HitCount)
}

func TestRouteRepository_DeleteExpired(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	expired := sampleRoute(21.1900, 81.2800, entity.ProfileDriving)
	expired.CachedAt = time.Now().Add(-48 * time.Hour)
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Insert(ctx, expired, false))
	require.NoError(t, repo.Insert(ctx, sampleRoute(21.1938, 81.2858, entity.ProfileDriving), false))

	deleted, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRouteRepository_DeleteLeastPopular_KeepsWarmEntries(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	// Three entries with distinct popularity: cold, warm, hot
	cold := sampleRoute(21.1000, 81.1000, entity.ProfileDriving)
	warm := sampleRoute(21.2000, 81.2000, entity.ProfileDriving)
	hot := sampleRoute(21.3000, 81.3000, entity.ProfileDriving)
	require.NoError(t, repo.Insert(ctx, cold, false))
	require.NoError(t, repo.Insert(ctx, warm, false))
	require.NoError(t, repo.Insert(ctx, hot, false))

	bump := func(lat, lng float64, times int) {
		for range times {
			_, err := repo.Lookup(ctx, lat, lng, 21.2514, 81.6296,
				entity.ProfileDriving, testTolerance)
			require.NoError(t, err)
		}
	}
	bump(21.2000, 81.2000, 2)
	bump(21.3000, 81.3000, 5)

	deleted, err := repo.DeleteLeastPopular(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	// Only the hottest entry survives
	_, err = repo.Lookup(ctx, 21.3000, 81.3000, 21.2514, 81.6296,
		entity.ProfileDriving, testTolerance)
	assert.NoError(t, err)
	_, err = repo.Lookup(ctx, 21.1000, 81.1000, 21.2514, 81.6296,
		entity.ProfileDriving, testTolerance)
	assert.ErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestRouteRepository_DeleteUnpopular(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	oldCold := sampleRoute(21.1000, 81.1000, entity.ProfileDriving)
	oldCold.CachedAt = time.Now().Add(-96 * time.Hour)
	require.NoError(t, repo.Insert(ctx, oldCold, false))

	freshCold := sampleRoute(21.2000, 81.2000, entity.ProfileDriving)
	require.NoError(t, repo.Insert(ctx, freshCold, false))

	oldWarm := sampleRoute(21.3000, 81.3000, entity.ProfileDriving)
	oldWarm.CachedAt = time.Now().Add(-96 * time.Hour)
	require.NoError(t, repo.Insert(ctx, oldWarm, false))
	for range 3 {
		_, err := repo.Lookup(ctx, 21.3000, 81.3000, 21.2514, 81.6296,
			entity.ProfileDriving, testTolerance)
		require.NoError(t, err)
	}

	// Only entries BOTH old and cold go
	deleted, err := repo.DeleteUnpopular(ctx, 2, time.Now().Add(-72*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRouteRepository_Clear(t *testing.T) {
	repo := NewRouteRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoute(21.1938, 81.2858, entity.ProfileDriving), false))
	require.NoError(t, repo.Insert(ctx, sampleRoute(21.2000, 81.3000, entity.ProfileWalking), false))

	require.NoError(t, repo.Clear(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
