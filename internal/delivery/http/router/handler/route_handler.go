package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"roost/internal/delivery/http/response"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler holds dependencies for route-related handlers
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// GetRoute handles the cache-first directions lookup
func (h *RouteHandler) GetRoute(c echo.Context) error {
	req, err := parseRouteRequest(c)
	if err != nil {
		return err
	}

	entry, err := h.routeUC.GetRoute(c.Request().Context(), req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry, "Route retrieved successfully")
}

// EvictUnpopular handles the maintenance sweep of cold route entries
func (h *RouteHandler) EvictUnpopular(c echo.Context) error {
	deleted, err := h.routeUC.EvictUnpopular(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Unpopular routes evicted successfully")
}

// ClearRoutes handles emptying the route cache
func (h *RouteHandler) ClearRoutes(c echo.Context) error {
	if err := h.routeUC.ClearRoutes(c.Request().Context()); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Route cache cleared successfully")
}

func parseRouteRequest(c echo.Context) (usecase.RouteRequest, error) {
	req := usecase.RouteRequest{
		Profile:              entity.TravelProfile(c.QueryParam("profile")),
		AssociatedLocationID: c.QueryParam("location_id"),
	}

	coords := []struct {
		param string
		dst   *float64
	}{
		{"origin_lat", &req.OriginLat},
		{"origin_lng", &req.OriginLng},
		{"dest_lat", &req.DestinationLat},
		{"dest_lng", &req.DestinationLng},
	}
	for _, coord := range coords {
		raw := c.QueryParam(coord.param)
		if raw == "" {
			return req, response.BadRequest(c, "INVALID_INPUT", coord.param+" is required")
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, response.BadRequest(c, "INVALID_INPUT", coord.param+" must be a number")
		}
		*coord.dst = v
	}

	return req, nil
}

// handleAppError handles application errors
func (h *RouteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
