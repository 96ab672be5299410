package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"roost/config"
	"roost/internal/delivery/http/response"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/infra/geo"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackRadiusKm = 5.0

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	SyncUC   usecase.SyncUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	searchUC        usecase.SearchUsecase
	syncUC          usecase.SyncUsecase
	defaultRadiusKm float64
	logger          *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	defaultRadius := fallbackRadiusKm
	if params.Config.Search != nil && params.Config.Search.DefaultRadiusKm > 0 {
		defaultRadius = params.Config.Search.DefaultRadiusKm
	}

	return &LocationHandler{
		searchUC:        params.SearchUC,
		syncUC:          params.SyncUC,
		defaultRadiusKm: defaultRadius,
		logger:          params.Logger,
	}
}

// RefreshRequest represents the request body for triggering a refresh
type RefreshRequest struct {
	Kind     *string  `json:"kind,omitempty"`
	Latitude *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	// Longitude is required whenever Latitude is set.
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	RadiusKm  float64  `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
	Force     bool     `json:"force"`
}

// BookmarkRequest represents the request body for setting a bookmark
type BookmarkRequest struct {
	Bookmarked bool `json:"bookmarked"`
}

// AvailabilityRequest represents the request body for updating availability
type AvailabilityRequest struct {
	Availability string `json:"availability" validate:"required,oneof=open limited full"`
}

// RatingRequest represents the request body for updating a rating
type RatingRequest struct {
	Rating float64 `json:"rating" validate:"min=0,max=5"`
	Count  int     `json:"count" validate:"min=0"`
}

// SearchLocations handles the filtered radius search
func (h *LocationHandler) SearchLocations(c echo.Context) error {
	center, ok, err := parsePoint(c, "lat", "lng")
	if err != nil {
		return err
	}
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng are required")
	}

	radiusKm := h.defaultRadiusKm
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "radius_km must be a number")
		}
	}

	sortKey, ok := usecase.ParseSortKey(c.QueryParam("sort"))
	if !ok {
		return response.BadRequest(c, "INVALID_SORT_KEY", "sort must be one of distance, price, rating")
	}

	filters, err := parseFilters(c)
	if err != nil {
		return err
	}

	locations, err := h.searchUC.Search(c.Request().Context(), center, radiusKm, filters, sortKey)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// GetLocation handles retrieving one location by id
func (h *LocationHandler) GetLocation(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_INPUT", "location id is required")
	}

	location, err := h.searchUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// RefreshLocations handles triggering a remote reconciliation
func (h *LocationHandler) RefreshLocations(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	scope := usecase.RefreshScope{}
	if req.Kind != nil {
		kind := entity.Kind(*req.Kind)
		scope.Kind = &kind
	}
	if req.Latitude != nil {
		if req.Longitude == nil {
			return response.BadRequest(c, "INVALID_INPUT", "longitude is required with latitude")
		}
		scope.Center = &geo.Point{Lat: *req.Latitude, Lng: *req.Longitude}
		scope.RadiusKm = req.RadiusKm
		if scope.RadiusKm <= 0 {
			scope.RadiusKm = h.defaultRadiusKm
		}
	}

	if err := h.syncUC.Refresh(c.Request().Context(), scope, req.Force); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"scope": scope.Key()}, "Refresh completed successfully")
}

// SetBookmark handles flipping the bookmark flag
func (h *LocationHandler) SetBookmark(c echo.Context) error {
	var req BookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	if err := h.searchUC.SetBookmark(c.Request().Context(), c.Param("id"), req.Bookmarked); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Bookmark updated successfully")
}

// UpdateAvailability handles updating a location's availability
func (h *LocationHandler) UpdateAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.searchUC.UpdateAvailability(c.Request().Context(), c.Param("id"), entity.Availability(req.Availability))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Availability updated successfully")
}

// UpdateRating handles updating a location's rating
func (h *LocationHandler) UpdateRating(c echo.Context) error {
	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.searchUC.UpdateRating(c.Request().Context(), c.Param("id"), req.Rating, req.Count)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating updated successfully")
}

// GetStats handles the cache statistics read
func (h *LocationHandler) GetStats(c echo.Context) error {
	stats, err := h.searchUC.Stats(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// EvictExpired handles the age-based cache sweep
func (h *LocationHandler) EvictExpired(c echo.Context) error {
	deleted, err := h.searchUC.EvictExpired(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Expired locations evicted successfully")
}

// ClearCache handles emptying the non-bookmarked cache
func (h *LocationHandler) ClearCache(c echo.Context) error {
	deleted, err := h.searchUC.ClearCache(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Cache cleared successfully")
}

// parsePoint reads a lat/lng pair from the query string. ok is false when
// both parameters are absent.
func parsePoint(c echo.Context, latParam, lngParam string) (geo.Point, bool, error) {
	rawLat, rawLng := c.QueryParam(latParam), c.QueryParam(lngParam)
	if rawLat == "" && rawLng == "" {
		return geo.Point{}, false, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return geo.Point{}, false, response.BadRequest(c, "INVALID_INPUT", latParam+" must be a number")
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return geo.Point{}, false, response.BadRequest(c, "INVALID_INPUT", lngParam+" must be a number")
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return geo.Point{}, false, response.BadRequest(c, "INVALID_INPUT", "coordinates out of bounds")
	}

	return geo.Point{Lat: lat, Lng: lng}, true, nil
}

func parseFilters(c echo.Context) (usecase.SearchFilters, error) {
	filters := usecase.SearchFilters{
		GenderPreference: c.QueryParam("gender"),
	}

	if raw := c.QueryParam("kinds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			filters.Kinds = append(filters.Kinds, entity.Kind(strings.TrimSpace(part)))
		}
	}

	for param, dst := range map[string]**float64{
		"price_min":    &filters.PriceMin,
		"price_max":    &filters.PriceMax,
		"rating_floor": &filters.RatingFloor,
	} {
		raw := c.QueryParam(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, response.BadRequest(c, "INVALID_INPUT", param+" must be a number")
		}
		*dst = &v
	}

	if raw := c.QueryParam("amenities"); raw != "" {
		amenities, err := parseAmenities(c, raw)
		if err != nil {
			return filters, err
		}
		filters.Amenities = amenities
	}

	filters.IncludeFull = c.QueryParam("include_full") == "true"

	return filters, nil
}

func parseAmenities(c echo.Context, raw string) (*entity.Amenities, error) {
	amenities := &entity.Amenities{}
	for _, part := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "wifi":
			amenities.WiFi = true
		case "study_desk":
			amenities.StudyDesk = true
		case "meals":
			amenities.Meals = true
		case "laundry":
			amenities.Laundry = true
		case "gym":
			amenities.Gym = true
		case "parking":
			amenities.Parking = true
		case "ac":
			amenities.AC = true
		case "attached_bathroom":
			amenities.Attached = true
		default:
			return nil, response.BadRequest(c, "INVALID_INPUT", "unknown amenity: "+part)
		}
	}

	return amenities, nil
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
