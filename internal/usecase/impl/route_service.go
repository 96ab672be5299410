package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roost/config"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"
	"roost/internal/errors"
	"roost/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	// fallback defaults keep the cache functional when config is missing
	defaultMaxCacheSize  = 500
	defaultToleranceDeg  = 0.001 // roughly 100 m
	defaultRouteTTL      = 24 * time.Hour
	defaultMinHitCount   = 2
	defaultRetention     = 72 * time.Hour
	defaultSweepInterval = time.Hour
)

type routeService struct {
	routeRepo repository.RouteRepository
	provider  service.DirectionsProvider

	maxCacheSize   int
	toleranceDeg   float64
	ttl            time.Duration
	minHitCount    int
	retention      time.Duration
	sweepInterval  time.Duration
	defaultProfile entity.TravelProfile

	group  singleflight.Group
	logger *slog.Logger
}

// RouteServiceParams holds dependencies for the route service, injected by Fx.
type RouteServiceParams struct {
	fx.In
	fx.Lifecycle

	RouteRepo repository.RouteRepository
	Provider  service.DirectionsProvider
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRouteService creates a new route cache service instance and binds its
// periodic maintenance sweep to the fx lifecycle.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	svc := newRouteService(params.RouteRepo, params.Provider, params.Config, params.Logger)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go svc.sweepLoop(sweepCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancelSweep()

			return nil
		},
	})

	return svc
}

func newRouteService(
	routeRepo repository.RouteRepository,
	provider service.DirectionsProvider,
	cfg *config.Config,
	logger *slog.Logger,
) *routeService {
	svc := &routeService{
		routeRepo:      routeRepo,
		provider:       provider,
		maxCacheSize:   defaultMaxCacheSize,
		toleranceDeg:   defaultToleranceDeg,
		ttl:            defaultRouteTTL,
		minHitCount:    defaultMinHitCount,
		retention:      defaultRetention,
		sweepInterval:  defaultSweepInterval,
		defaultProfile: entity.ProfileDriving,
		logger:         logger,
	}

	if rc := cfg.RouteCache; rc != nil {
		if rc.MaxCacheSize > 0 {
			svc.maxCacheSize = rc.MaxCacheSize
		}
		if rc.ToleranceDeg > 0 {
			svc.toleranceDeg = rc.ToleranceDeg
		}
		if rc.TTL > 0 {
			svc.ttl = rc.TTL
		}
		if rc.MinHitCount > 0 {
			svc.minHitCount = rc.MinHitCount
		}
		if rc.Retention > 0 {
			svc.retention = rc.Retention
		}
		if rc.SweepInterval > 0 {
			svc.sweepInterval = rc.SweepInterval
		}
	}
	if cfg.Directions != nil && cfg.Directions.DefaultProfile != "" {
		svc.defaultProfile = entity.TravelProfile(cfg.Directions.DefaultProfile)
	}

	return svc
}

// GetRoute answers from the cache when possible, otherwise computes the
// route once per key and caches the result.
func (s *routeService) GetRoute(ctx context.Context, req usecase.RouteRequest) (*entity.RouteEntry, error) {
	if err := validateRouteRequest(req); err != nil {
		return nil, err
	}

	profile := req.Profile
	if profile == "" {
		profile = s.defaultProfile
	}

	entry, err := s.routeRepo.Lookup(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng, profile, s.toleranceDeg)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, repository.ErrRouteNotFound) {
		return nil, err
	}

	// Coalesce concurrent misses: one provider call per rounded key
	key := routeKey(req, profile)
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.computeAndCache(ctx, req, profile)
	})
	if err != nil {
		return nil, err
	}

	return result.(*entity.RouteEntry), nil
}

func (s *routeService) computeAndCache(ctx context.Context, req usecase.RouteRequest, profile entity.TravelProfile) (*entity.RouteEntry, error) {
	// A racing caller may have cached the route between our miss and the
	// singleflight slot; check once more before paying for the provider.
	if entry, err := s.routeRepo.Lookup(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng, profile, s.toleranceDeg); err == nil {
		return entry, nil
	}

	info, err := s.provider.ComputeRoute(ctx, req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng, profile)
	if err != nil {
		s.logger.Warn("directions provider call failed",
			slog.String("profile", string(profile)), slog.Any("error", err))

		return nil, domainerrors.ErrDirectionsUnavailable.WithDetails(err.Error())
	}

	now := time.Now()
	entry := &entity.RouteEntry{
		OriginLat:            req.OriginLat,
		OriginLng:            req.OriginLng,
		DestinationLat:       req.DestinationLat,
		DestinationLng:       req.DestinationLng,
		Profile:              profile,
		DurationSeconds:      info.DurationSeconds,
		DistanceMeters:       info.DistanceMeters,
		PeakDuration:         info.PeakDuration,
		OffPeakDuration:      info.OffPeakDuration,
		Congestion:           info.Congestion,
		CachedAt:             now,
		LastAccessedAt:       now,
		ExpiresAt:            now.Add(s.ttl),
		AssociatedLocationID: req.AssociatedLocationID,
	}

	if err := s.routeRepo.Insert(ctx, entry, false); err != nil {
		return nil, err
	}

	if err := s.enforceCapacity(ctx); err != nil {
		s.logger.Warn("route cache eviction failed", slog.Any("error", err))
	}

	return entry, nil
}

// enforceCapacity applies the two-phase eviction policy: expired entries go
// first, then the least popular until the cache fits. Expired data never
// survives on popularity, and cold unexpired entries go before warm ones.
func (s *routeService) enforceCapacity(ctx context.Context) error {
	count, err := s.routeRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= int64(s.maxCacheSize) {
		return nil
	}

	expired, err := s.routeRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return err
	}
	count -= expired

	if over := count - int64(s.maxCacheSize); over > 0 {
		deleted, err := s.routeRepo.DeleteLeastPopular(ctx, int(over))
		if err != nil {
			return err
		}
		s.logger.Debug("route cache capacity eviction",
			slog.Int64("expired", expired), slog.Int64("evicted", deleted))
	}

	return nil
}

// EvictUnpopular runs the maintenance sweep independent of capacity.
func (s *routeService) EvictUnpopular(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.retention)

	return s.routeRepo.DeleteUnpopular(ctx, s.minHitCount, cutoff)
}

// ClearRoutes empties the route cache.
func (s *routeService) ClearRoutes(ctx context.Context) error {
	return s.routeRepo.Clear(ctx)
}

// sweepLoop periodically reclaims cold entries that capacity eviction never
// reaches.
func (s *routeService) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.EvictUnpopular(ctx)
			if err != nil {
				s.logger.Warn("route cache sweep failed", slog.Any("error", err))

				continue
			}
			if deleted > 0 {
				s.logger.Info("route cache sweep", slog.Int64("deleted", deleted))
			}
		}
	}
}

func validateRouteRequest(req usecase.RouteRequest) error {
	coords := []struct {
		lat, lng float64
	}{
		{req.OriginLat, req.OriginLng},
		{req.DestinationLat, req.DestinationLng},
	}
	for _, c := range coords {
		if c.lat < -90 || c.lat > 90 || c.lng < -180 || c.lng > 180 {
			return domainerrors.ErrInvalidInput.WithDetails("coordinates out of bounds")
		}
	}

	return nil
}

// routeKey is the coalescing identity of a route request.
func routeKey(req usecase.RouteRequest, profile entity.TravelProfile) string {
	return fmt.Sprintf("%v:%v:%v:%v:%s",
		entity.RoundCoord(req.OriginLat),
		entity.RoundCoord(req.OriginLng),
		entity.RoundCoord(req.DestinationLat),
		entity.RoundCoord(req.DestinationLng),
		profile)
}
