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
	"roost/internal/domain/service"
	mockRepo "roost/internal/mocks/repository"
	mockService "roost/internal/mocks/service"
	"roost/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouteService(t *testing.T, cfg *config.Config) (*mockRepo.MockRouteRepository, *mockService.MockDirectionsProvider, *routeService) {
	routeRepo := mockRepo.NewMockRouteRepository(t)
	provider := mockService.NewMockDirectionsProvider(t)
	svc := newRouteService(routeRepo, provider, cfg, testLogger())

	return routeRepo, provider, svc
}

func testRouteRequest() usecase.RouteRequest {
	return usecase.RouteRequest{
		OriginLat:      21.1938,
		OriginLng:      81.2858,
		DestinationLat: 21.2514,
		DestinationLng: 81.6296,
		Profile:        entity.ProfileDriving,
	}
}

func TestRouteService_GetRoute_CacheHitSkipsProvider(t *testing.T) {
	routeRepo, _, svc := newTestRouteService(t, testConfig())

	ctx := context.Background()
	req := testRouteRequest()
	cached := &entity.RouteEntry{
		OriginLat: req.OriginLat, OriginLng: req.OriginLng,
		DestinationLat: req.DestinationLat, DestinationLng: req.DestinationLng,
		Profile: entity.ProfileDriving, DurationSeconds: 2400,
	}

	routeRepo.EXPECT().
		Lookup(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving, defaultToleranceDeg).
		Return(cached, nil)

	entry, err := svc.GetRoute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, cached, entry)
}

func TestRouteService_GetRoute_MissComputesAndCaches(t *testing.T) {
	routeRepo, provider, svc := newTestRouteService(t, testConfig())

	ctx := context.Background()
	req := testRouteRequest()
	peak := 3100

	routeRepo.EXPECT().
		Lookup(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving, defaultToleranceDeg).
		Return(nil, repository.ErrRouteNotFound)
	provider.EXPECT().
		ComputeRoute(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving).
		Return(&service.RouteInfo{
			DurationSeconds: 2400,
			DistanceMeters:  36500,
			PeakDuration:    &peak,
			Congestion:      entity.CongestionModerate,
		}, nil)
	routeRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.RouteEntry"), false).
		Run(func(_ context.Context, entry *entity.RouteEntry, _ bool) {
			assert.Equal(t, 2400, entry.DurationSeconds)
			assert.Equal(t, entity.CongestionModerate, entry.Congestion)
			assert.WithinDuration(t, time.Now().Add(defaultRouteTTL), entry.ExpiresAt, time.Minute)
		}).
		Return(nil)
	routeRepo.EXPECT().
		Count(ctx).
		Return(int64(10), nil)

	entry, err := svc.GetRoute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2400, entry.DurationSeconds)
	assert.Equal(t, float64(36500), entry.DistanceMeters)
	require.NotNil(t, entry.PeakDuration)
	assert.Equal(t, peak, *entry.PeakDuration)
}

func TestRouteService_GetRoute_EmptyProfileUsesDefault(t *testing.T) {
	cfg := testConfig()
	cfg.Directions = &config.DirectionsConfig{DefaultProfile: "walking"}
	routeRepo, _, svc := newTestRouteService(t, cfg)

	ctx := context.Background()
	req := testRouteRequest()
	req.Profile = ""

	routeRepo.EXPECT().
		Lookup(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileWalking, defaultToleranceDeg).
		Return(&entity.RouteEntry{Profile: entity.ProfileWalking}, nil)

	entry, err := svc.GetRoute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, entity.ProfileWalking, entry.Profile)
}

func TestRouteService_GetRoute_RejectsOutOfBoundsCoordinates(t *testing.T) {
	_, _, svc := newTestRouteService(t, testConfig())

	req := testRouteRequest()
	req.DestinationLat = 91

	_, err := svc.GetRoute(context.Background(), req)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestRouteService_GetRoute_ProviderFailure(t *testing.T) {
	routeRepo, provider, svc := newTestRouteService(t, testConfig())

	ctx := context.Background()
	req := testRouteRequest()

	routeRepo.EXPECT().
		Lookup(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving, defaultToleranceDeg).
		Return(nil, repository.ErrRouteNotFound)
	provider.EXPECT().
		ComputeRoute(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving).
		Return(nil, errors.New("upstream timeout"))

	_, err := svc.GetRoute(ctx, req)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DIRECTIONS_UNAVAILABLE", appErr.ErrorCode())
}

func TestRouteService_GetRoute_CapacityEvictsExpiredThenLeastPopular(t *testing.T) {
	cfg := testConfig()
	cfg.RouteCache = &config.RouteCacheConfig{MaxCacheSize: 100}
	routeRepo, provider, svc := newTestRouteService(t, cfg)

	ctx := context.Background()
	req := testRouteRequest()

	routeRepo.EXPECT().
		Lookup(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving, defaultToleranceDeg).
		Return(nil, repository.ErrRouteNotFound)
	provider.EXPECT().
		ComputeRoute(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving).
		Return(&service.RouteInfo{DurationSeconds: 1200, DistanceMeters: 9000}, nil)
	routeRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.RouteEntry"), false).
		Return(nil)

	// 110 entries against a 100 ceiling: 4 expired entries go first, the
	// remaining 6-entry overage falls on the least popular.
	routeRepo.EXPECT().
		Count(ctx).
		Return(int64(110), nil)
	routeRepo.EXPECT().
		DeleteExpired(ctx, mock.AnythingOfType("time.Time")).
		Return(int64(4), nil)
	routeRepo.EXPECT().
		DeleteLeastPopular(ctx, 6).
		Return(int64(6), nil)

	_, err := svc.GetRoute(ctx, req)
	require.NoError(t, err)
}

func TestRouteService_GetRoute_CoalescesConcurrentMisses(t *testing.T) {
	routeRepo, provider, svc := newTestRouteService(t, testConfig())

	ctx := context.Background()
	req := testRouteRequest()
	const callers = 5

	var computeCalls atomic.Int32
	release := make(chan struct{})

	routeRepo.EXPECT().
		Lookup(mock.Anything, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving, defaultToleranceDeg).
		Return(nil, repository.ErrRouteNotFound)
	provider.EXPECT().
		ComputeRoute(mock.Anything, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng,
			entity.ProfileDriving).
		RunAndReturn(func(context.Context, float64, float64, float64, float64, entity.TravelProfile) (*service.RouteInfo, error) {
			computeCalls.Add(1)
			<-release

			return &service.RouteInfo{DurationSeconds: 2400, DistanceMeters: 36500}, nil
		})
	routeRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.RouteEntry"), false).
		Return(nil)
	routeRepo.EXPECT().
		Count(mock.Anything).
		Return(int64(1), nil)

	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for range callers {
		go func() {
			defer done.Done()
			started.Done()

			entry, err := svc.GetRoute(ctx, req)
			assert.NoError(t, err)
			if entry != nil {
				assert.Equal(t, 2400, entry.DurationSeconds)
			}
		}()
	}

	started.Wait()
	time.Sleep(50 * time.Millisecond) // let every caller miss and join the flight
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), computeCalls.Load())
}

func TestRouteService_EvictUnpopular_UsesConfiguredPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.RouteCache = &config.RouteCacheConfig{
		MinHitCount: 3,
		Retention:   48 * time.Hour,
	}
	routeRepo, _, svc := newTestRouteService(t, cfg)

	ctx := context.Background()

	routeRepo.EXPECT().
		DeleteUnpopular(ctx, 3, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ int, cutoff time.Time) {
			expected := time.Now().Add(-48 * time.Hour)
			assert.WithinDuration(t, expected, cutoff, time.Minute)
		}).
		Return(int64(5), nil)

	deleted, err := svc.EvictUnpopular(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}

func TestRouteService_ClearRoutes(t *testing.T) {
	routeRepo, _, svc := newTestRouteService(t, testConfig())

	ctx := context.Background()

	routeRepo.EXPECT().
		Clear(ctx).
		Return(nil)

	require.NoError(t, svc.ClearRoutes(ctx))
}
