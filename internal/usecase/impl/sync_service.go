package impl

import (
	"context"
	"log/slog"
	"time"

	"roost/config"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"
	"roost/internal/infra/geo"
	"roost/internal/usecase"
	"roost/internal/usecase/watch"

	"golang.org/x/sync/singleflight"
)

const backgroundRefreshTimeout = 30 * time.Second

type syncService struct {
	locationRepo repository.LocationRepository
	remote       service.RemoteSource
	hub          *watch.Hub
	region       entity.Region

	// staleAfter zero keeps the source behavior: refresh on every read
	staleAfter time.Duration

	group  singleflight.Group
	logger *slog.Logger
}

// NewSyncService creates a new sync coordinator instance
func NewSyncService(
	locationRepo repository.LocationRepository,
	remote service.RemoteSource,
	hub *watch.Hub,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SyncUsecase {
	var staleAfter time.Duration
	if cfg.Search != nil {
		staleAfter = cfg.Search.StaleAfter
	}

	return &syncService{
		locationRepo: locationRepo,
		remote:       remote,
		hub:          hub,
		region:       regionFromConfig(cfg),
		staleAfter:   staleAfter,
		logger:       logger,
	}
}

// Refresh fetches the scope from the remote source and merges validated
// records into the local store. Only one remote call per scope key is in
// flight at a time; concurrent callers share its outcome.
func (s *syncService) Refresh(ctx context.Context, scope usecase.RefreshScope, force bool) error {
	cached, err := s.locationRepo.FindAll(ctx, scopeQuery(scope))
	if err != nil {
		return err
	}

	if !force && !s.isStale(cached) {
		return nil
	}

	_, err, _ = s.group.Do(scope.Key(), func() (any, error) {
		return nil, s.reconcile(ctx, scope, len(cached) > 0)
	})

	return err
}

// RefreshIfStale triggers Refresh in the background when the scope's cached
// set is stale. It never blocks on network I/O.
func (s *syncService) RefreshIfStale(scope usecase.RefreshScope) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundRefreshTimeout)
		defer cancel()

		if err := s.Refresh(ctx, scope, false); err != nil {
			s.logger.Warn("background refresh failed",
				slog.String("scope", scope.Key()), slog.Any("error", err))
		}
	}()
}

// isStale reports whether the cached set needs reconciliation: an empty set
// always does, and a non-empty one does once its oldest record outlives the
// staleness window.
func (s *syncService) isStale(cached []*entity.Location) bool {
	if len(cached) == 0 {
		return true
	}
	if s.staleAfter <= 0 {
		return true
	}

	cutoff := time.Now().Add(-s.staleAfter)
	for _, loc := range cached {
		if loc.CachedAt.Before(cutoff) {
			return true
		}
	}

	return false
}

// reconcile is the Refreshing -> Reconciled transition: fetch, validate,
// merge, notify. A remote failure with a warm cache is demoted to a log
// line; subscribers keep the data they already have.
func (s *syncService) reconcile(ctx context.Context, scope usecase.RefreshScope, warm bool) error {
	fetched, err := s.fetch(ctx, scope)
	if err != nil {
		if warm {
			s.logger.Warn("remote refresh failed, serving cached data",
				slog.String("scope", scope.Key()), slog.Any("error", err))

			return nil
		}

		return domainerrors.ErrRemoteUnavailable.WithDetails(err.Error())
	}

	now := time.Now()
	valid := make([]*entity.Location, 0, len(fetched))
	dropped := 0
	for _, loc := range fetched {
		if !s.region.Contains(loc.Latitude, loc.Longitude) {
			dropped++

			continue
		}
		loc.CachedAt = now
		loc.UpdatedAt = now
		valid = append(valid, loc)
	}
	if dropped > 0 {
		s.logger.Debug("dropped out-of-region records from refresh",
			slog.String("scope", scope.Key()), slog.Int("dropped", dropped))
	}

	if len(valid) > 0 {
		if err := s.locationRepo.UpsertMany(ctx, valid); err != nil {
			return err
		}
	}

	s.hub.Notify(ctx)
	s.logger.Info("refresh reconciled",
		slog.String("scope", scope.Key()),
		slog.Int("merged", len(valid)),
		slog.Int("dropped", dropped))

	return nil
}

func (s *syncService) fetch(ctx context.Context, scope usecase.RefreshScope) ([]*entity.Location, error) {
	if scope.Center != nil {
		return s.remote.FetchNearby(ctx, scope.Center.Lat, scope.Center.Lng, scope.RadiusKm)
	}

	return s.remote.FetchAll(ctx, scope.Kind)
}

// scopeQuery builds the store query matching a refresh scope.
func scopeQuery(scope usecase.RefreshScope) repository.LocationQuery {
	q := repository.LocationQuery{}
	if scope.Kind != nil {
		q.Kinds = []entity.Kind{*scope.Kind}
	}
	if scope.Center != nil {
		latTol, lngTol := geo.BoundingTolerance(scope.Center.Lat, scope.RadiusKm)
		minLat, maxLat := scope.Center.Lat-latTol, scope.Center.Lat+latTol
		minLng, maxLng := scope.Center.Lng-lngTol, scope.Center.Lng+lngTol
		q.MinLat, q.MaxLat = &minLat, &maxLat
		q.MinLng, q.MaxLng = &minLng, &maxLng
	}

	return q
}
