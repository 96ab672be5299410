// Package impl contains the concrete usecase services.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"roost/config"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"
	"roost/internal/errors"
	"roost/internal/infra/geo"
	"roost/internal/usecase"
	"roost/internal/usecase/watch"
)

const defaultEvictAfter = 7 * 24 * time.Hour

type searchService struct {
	locationRepo repository.LocationRepository
	remote       service.RemoteSource
	sync         usecase.SyncUsecase
	hub          *watch.Hub
	region       entity.Region
	evictAfter   time.Duration
	logger       *slog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(
	locationRepo repository.LocationRepository,
	remote service.RemoteSource,
	syncUC usecase.SyncUsecase,
	hub *watch.Hub,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	evictAfter := defaultEvictAfter
	if cfg.Search != nil && cfg.Search.EvictAfter > 0 {
		evictAfter = cfg.Search.EvictAfter
	}

	return &searchService{
		locationRepo: locationRepo,
		remote:       remote,
		sync:         syncUC,
		hub:          hub,
		region:       regionFromConfig(cfg),
		evictAfter:   evictAfter,
		logger:       logger,
	}
}

func regionFromConfig(cfg *config.Config) entity.Region {
	if cfg.Region == nil {
		// Whole-earth bounds when no region is configured
		return entity.NewRegion("earth", -90, -180, 90, 180)
	}

	return entity.NewRegion(cfg.Region.Name, cfg.Region.MinLat, cfg.Region.MinLng, cfg.Region.MaxLat, cfg.Region.MaxLng)
}

// Search executes a filtered, deterministically ordered query against the
// local store.
func (s *searchService) Search(ctx context.Context, center geo.Point, radiusKm float64, filters usecase.SearchFilters, sortKey usecase.SortKey) ([]*entity.Location, error) {
	if _, ok := usecase.ParseSortKey(string(sortKey)); !ok {
		return nil, domainerrors.ErrInvalidSortKey.WithDetails("sort key must be one of distance, price, rating")
	}
	if radiusKm <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("radius must be positive")
	}

	// Rectangular pre-filter pushed into the store query; the exact
	// distance check below only runs on survivors.
	latTol, lngTol := geo.BoundingTolerance(center.Lat, radiusKm)
	minLat, maxLat := center.Lat-latTol, center.Lat+latTol
	minLng, maxLng := center.Lng-lngTol, center.Lng+lngTol

	q := repository.LocationQuery{
		Kinds:       filters.Kinds,
		PriceMin:    filters.PriceMin,
		PriceMax:    filters.PriceMax,
		RatingFloor: filters.RatingFloor,
		Amenities:   filters.Amenities,
		MinLat:      &minLat,
		MaxLat:      &maxLat,
		MinLng:      &minLng,
		MaxLng:      &maxLng,
	}
	if !filters.IncludeFull {
		q.Availability = []entity.Availability{entity.AvailabilityOpen, entity.AvailabilityLimited}
	}

	candidates, err := s.locationRepo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}

	results := make([]*entity.Location, 0, len(candidates))
	distances := make(map[string]float64, len(candidates))
	for _, loc := range candidates {
		if !matchesGender(loc, filters.GenderPreference) {
			continue
		}

		d := geo.DistanceKm(center, geo.Point{Lat: loc.Latitude, Lng: loc.Longitude})
		if d > radiusKm {
			continue
		}

		distances[loc.ID] = d
		results = append(results, loc)
	}

	sortLocations(results, distances, sortKey)

	// Serve-cached-then-refresh: the cached answer above is already on its
	// way back; reconciliation happens off the read path.
	if s.sync != nil {
		s.sync.RefreshIfStale(usecase.RefreshScope{Center: &center, RadiusKm: radiusKm})
	}

	return results, nil
}

// matchesGender applies the preference wildcard rules: an empty or "Any"
// request matches every record, and records without a preference match
// every request.
func matchesGender(loc *entity.Location, pref string) bool {
	if pref == "" || strings.EqualFold(pref, "any") {
		return true
	}
	if loc.GenderPreference == "" || strings.EqualFold(loc.GenderPreference, "any") {
		return true
	}

	return strings.EqualFold(loc.GenderPreference, pref)
}

// sortLocations orders results by the selected comparator. Ascending
// distance is always the final tie-break so ordering is deterministic.
func sortLocations(locs []*entity.Location, distances map[string]float64, key usecase.SortKey) {
	byDistance := func(a, b *entity.Location) bool {
		da, db := distances[a.ID], distances[b.ID]
		if da != db {
			return da < db
		}

		// Stable total order even for equidistant records
		return a.ID < b.ID
	}

	sort.Slice(locs, func(i, j int) bool {
		a, b := locs[i], locs[j]

		switch key {
		case usecase.SortByPrice:
			pa, pb := priceForSort(a), priceForSort(b)
			if pa != pb {
				return pa < pb
			}
		case usecase.SortByRating:
			ra, rb := a.EffectiveRating(), b.EffectiveRating()
			if ra != rb {
				return ra > rb
			}
		}

		return byDistance(a, b)
	})
}

// priceForSort places unpriced listings after every priced one.
func priceForSort(loc *entity.Location) float64 {
	if loc.PriceMonthly == nil {
		return maxPrice
	}

	return *loc.PriceMonthly
}

const maxPrice = 1e18

// GetByID checks the local store first and falls back to the remote source.
func (s *searchService) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	loc, err := s.locationRepo.FindByID(ctx, id)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, repository.ErrLocationNotFound) {
		return nil, err
	}

	fetched, err := s.remote.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrRemoteNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		s.logger.Warn("remote fetch by id failed",
			slog.String("id", id), slog.Any("error", err))

		return nil, domainerrors.ErrRemoteUnavailable.WithDetails(err.Error())
	}

	// Out-of-region records never enter the cache and stay invisible
	if !s.region.Contains(fetched.Latitude, fetched.Longitude) {
		return nil, domainerrors.ErrLocationNotFound
	}

	if err := s.locationRepo.Upsert(ctx, fetched); err != nil {
		return nil, err
	}
	s.hub.Notify(ctx)

	return fetched, nil
}

// Subscribe returns a live sequence of result sets for the query.
func (s *searchService) Subscribe(ctx context.Context, q repository.LocationQuery) (*watch.Subscription, error) {
	sub, err := s.hub.Subscribe(ctx, func(ctx context.Context) ([]*entity.Location, error) {
		return s.locationRepo.FindAll(ctx, q)
	})
	if err != nil {
		return nil, err
	}

	if s.sync != nil {
		scope := usecase.RefreshScope{}
		if len(q.Kinds) == 1 {
			scope.Kind = &q.Kinds[0]
		}
		s.sync.RefreshIfStale(scope)
	}

	return sub, nil
}

// Ingest validates records against the service region and saves the valid ones.
func (s *searchService) Ingest(ctx context.Context, locs []*entity.Location) (int, error) {
	now := time.Now()
	valid := make([]*entity.Location, 0, len(locs))
	for _, loc := range locs {
		if !s.region.Contains(loc.Latitude, loc.Longitude) {
			s.logger.Debug("rejecting out-of-region record",
				slog.String("id", loc.ID),
				slog.Float64("lat", loc.Latitude),
				slog.Float64("lng", loc.Longitude))

			continue
		}
		if loc.CachedAt.IsZero() {
			loc.CachedAt = now
		}
		if loc.UpdatedAt.IsZero() {
			loc.UpdatedAt = now
		}
		valid = append(valid, loc)
	}

	if len(valid) == 0 {
		return 0, nil
	}

	if err := s.locationRepo.UpsertMany(ctx, valid); err != nil {
		return 0, err
	}
	s.hub.Notify(ctx)

	return len(valid), nil
}

// SetBookmark flips the bookmark flag on a cached record.
func (s *searchService) SetBookmark(ctx context.Context, id string, bookmarked bool) error {
	if err := s.locationRepo.SetBookmark(ctx, id, bookmarked); err != nil {
		return mapMutationError(err)
	}
	s.hub.Notify(ctx)

	return nil
}

// UpdateAvailability mutates a cached record's availability.
func (s *searchService) UpdateAvailability(ctx context.Context, id string, availability entity.Availability) error {
	switch availability {
	case entity.AvailabilityOpen, entity.AvailabilityLimited, entity.AvailabilityFull:
	default:
		return domainerrors.ErrInvalidInput.WithDetails("availability must be open, limited or full")
	}

	if err := s.locationRepo.UpdateAvailability(ctx, id, availability); err != nil {
		return mapMutationError(err)
	}
	s.hub.Notify(ctx)

	return nil
}

// UpdateRating mutates a cached record's rating.
func (s *searchService) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	if rating < 0 || rating > 5 || count < 0 {
		return domainerrors.ErrInvalidInput.WithDetails("rating must be in [0,5] and count non-negative")
	}

	if err := s.locationRepo.UpdateRating(ctx, id, rating, count); err != nil {
		return mapMutationError(err)
	}
	s.hub.Notify(ctx)

	return nil
}

// Stats reports total and per-kind cached record counts.
func (s *searchService) Stats(ctx context.Context) (*repository.LocationStats, error) {
	return s.locationRepo.Stats(ctx)
}

// EvictExpired removes non-bookmarked records older than the retention.
func (s *searchService) EvictExpired(ctx context.Context) (int64, error) {
	deleted, err := s.locationRepo.EvictExpired(ctx, time.Now().Add(-s.evictAfter))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.hub.Notify(ctx)
	}

	return deleted, nil
}

// ClearCache removes every non-bookmarked record.
func (s *searchService) ClearCache(ctx context.Context) (int64, error) {
	deleted, err := s.locationRepo.EvictAllNonBookmarked(ctx)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.hub.Notify(ctx)
	}

	return deleted, nil
}

func mapMutationError(err error) error {
	if errors.Is(err, repository.ErrLocationNotFound) {
		return domainerrors.ErrLocationNotFound
	}

	return err
}
