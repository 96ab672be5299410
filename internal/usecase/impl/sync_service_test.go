package impl

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"roost/config"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/infra/geo"
	mockRepo "roost/internal/mocks/repository"
	mockService "roost/internal/mocks/service"
	"roost/internal/usecase"
	"roost/internal/usecase/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSyncService(t *testing.T, cfg *config.Config) (*mockRepo.MockLocationRepository, *mockService.MockRemoteSource, usecase.SyncUsecase) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	remote := mockService.NewMockRemoteSource(t)
	hub := watch.NewHub(testLogger())
	svc := NewSyncService(locationRepo, remote, hub, cfg, testLogger())

	return locationRepo, remote, svc
}

func TestSyncService_Refresh_ColdCacheFetchesAndMerges(t *testing.T) {
	locationRepo, remote, svc := newTestSyncService(t, testConfig())

	ctx := context.Background()
	fetched := []*entity.Location{
		{ID: "loc-1", Latitude: 21.2, Longitude: 81.3},
		{ID: "loc-2", Latitude: 21.1, Longitude: 81.4},
	}

	locationRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.LocationQuery")).
		Return(nil, nil)
	remote.EXPECT().
		FetchAll(ctx, (*entity.Kind)(nil)).
		Return(fetched, nil)
	locationRepo.EXPECT().
		UpsertMany(ctx, mock.AnythingOfType("[]*entity.Location")).
		Run(func(_ context.Context, saved []*entity.Location) {
			require.Len(t, saved, 2)
			for _, loc := range saved {
				assert.False(t, loc.CachedAt.IsZero())
				assert.False(t, loc.UpdatedAt.IsZero())
			}
		}).
		Return(nil)

	err := svc.Refresh(ctx, usecase.RefreshScope{}, false)
	require.NoError(t, err)
}

func TestSyncService_Refresh_ColdCacheRemoteFailureSurfaces(t *testing.T) {
	locationRepo, remote, svc := newTestSyncService(t, testConfig())

	ctx := context.Background()

	locationRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.LocationQuery")).
		Return(nil, nil)
	remote.EXPECT().
		FetchAll(ctx, (*entity.Kind)(nil)).
		Return(nil, errors.New("connection refused"))

	err := svc.Refresh(ctx, usecase.RefreshScope{}, false)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REMOTE_UNAVAILABLE", appErr.ErrorCode())
}

func TestSyncService_Refresh_WarmCacheRemoteFailureIsSwallowed(t *testing.T) {
	cfg := testConfig()
	cfg.Search = &config.SearchConfig{StaleAfter: time.Minute}
	locationRepo, remote, svc := newTestSyncService(t, cfg)

	ctx := context.Background()
	stale := []*entity.Location{
		{ID: "loc-1", Latitude: 21.2, Longitude: 81.3, CachedAt: time.Now().Add(-time.Hour)},
	}

	locationRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.LocationQuery")).
		Return(stale, nil)
	remote.EXPECT().
		FetchAll(ctx, (*entity.Kind)(nil)).
		Return(nil, errors.New("connection refused"))

	// Subscribers keep serving the data they already have
	err := svc.Refresh(ctx, usecase.RefreshScope{}, false)
	require.NoError(t, err)
}

func TestSyncService_Refresh_FreshCacheSkipsRemote(t *testing.T) {
	cfg := testConfig()
	cfg.Search = &config.SearchConfig{StaleAfter: time.Hour}
	locationRepo, _, svc := newTestSyncService(t, cfg)

	ctx := context.Background()
	fresh := []*entity.Location{
		{ID: "loc-1", Latitude: 21.2, Longitude: 81.3, CachedAt: time.Now()},
	}

	locationRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.LocationQuery")).
		Return(fresh, nil)

	err := svc.Refresh(ctx, usecase.RefreshScope{}, false)
	require.NoError(t, err)
}

func TestSyncService_Refresh_ForceBypassesFreshness(t *testing.T) {
	cfg := testConfig()
	cfg.Search = &config.SearchConfig{StaleAfter: time.Hour}
	locationRepo, remote, svc := newTestSyncService(t, cfg)

	ctx := context.Background()
	fresh := []*entity.Location{
		{ID: "loc-1", Latitude: 21.2, Longitude: 81.3, CachedAt: time.Now()},
	}

	locationRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.LocationQuery")).
		Return(fresh, nil)
	remote.EXPECT().
		FetchAll(ctx, (*entity.Kind)(nil)).
		Return(nil, nil)

	err := svc.Refresh(ctx, usecase.RefreshScope{}, true)
	require.NoError(t, err)
}

func TestSyncService_Refresh_DropsOutOfRegionRecords(t *testing.T) {
	locationRepo, remote, svc := newTestSyncService(t, testConfig())

	ctx := context.Background()
	fetched := []*entity.Location{
		{ID: "in-region", Latitude: 21.2, Longitude: 81.3},
		{ID: "out-of-region", Latitude: 19.076, Longitude: 72.877},
	}

	locationRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.LocationQuery")).
		Return(nil, nil)
	remote.EXPECT().
		FetchAll(ctx, (*entity.Kind)(nil)).
		Return(fetched, nil)
	locationRepo.EXPECT().
		UpsertMany(ctx, mock.AnythingOfType("[]*entity.Location")).
		Run(func(_ context.Context, saved []*entity.Location) {
			require.Len(t, saved, 1)
			assert.Equal(t, "in-region", saved[0].ID)
		}).
		Return(nil)

	err := svc.Refresh(ctx, usecase.RefreshScope{}, false)
	require.NoError(t, err)
}

func TestSyncService_Refresh_KindScopeFetchesThatKindOnly(t *testing.T) {
	locationRepo, remote, svc := newTestSyncService(t, testConfig())

	ctx := context.Background()
	kind := entity.KindMess

	locationRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.LocationQuery")).
		Run(func(_ context.Context, q repository.LocationQuery) {
			require.Len(t, q.Kinds, 1)
			assert.Equal(t, entity.KindMess, q.Kinds[0])
		}).
		Return(nil, nil)
	remote.EXPECT().
		FetchAll(ctx, &kind).
		Return(nil, nil)

	err := svc.Refresh(ctx, usecase.RefreshScope{Kind: &kind}, false)
	require.NoError(t, err)
}

func TestSyncService_Refresh_CoalescesConcurrentCallers(t *testing.T) {
	locationRepo, remote, svc := newTestSyncService(t, testConfig())

	ctx := context.Background()
	const callers = 5

	var fetchCalls atomic.Int32
	release := make(chan struct{})

	locationRepo.EXPECT().
		FindAll(mock.Anything, mock.AnythingOfType("repository.LocationQuery")).
		Return(nil, nil)
	remote.EXPECT().
		FetchAll(mock.Anything, (*entity.Kind)(nil)).
		RunAndReturn(func(context.Context, *entity.Kind) ([]*entity.Location, error) {
			fetchCalls.Add(1)
			<-release

			return nil, nil
		})

	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for range callers {
		go func() {
			defer done.Done()
			started.Done()

			assert.NoError(t, svc.Refresh(ctx, usecase.RefreshScope{}, true))
		}()
	}

	started.Wait()
	time.Sleep(50 * time.Millisecond) // let every caller reach the flight group
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), fetchCalls.Load())
}

func TestSyncService_RefreshScopeKeys(t *testing.T) {
	kind := entity.KindPG

	assert.Equal(t, "all", usecase.RefreshScope{}.Key())
	assert.Equal(t, "kind:PG", usecase.RefreshScope{Kind: &kind}.Key())

	center := geo.Point{Lat: 21.1938, Lng: 81.2858}
	nearby := usecase.RefreshScope{
		Center:   &center,
		RadiusKm: 5,
	}
	assert.Equal(t, "nearby:21.1938:81.2858:5.0", nearby.Key())
}
