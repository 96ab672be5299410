// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roost/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	RouteHandler    *handler.RouteHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	routeHandler    *handler.RouteHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		routeHandler:    params.RouteHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("/search", r.locationHandler.SearchLocations)
		locationGroup.GET("/stats", r.locationHandler.GetStats)
		locationGroup.GET("/:id", r.locationHandler.GetLocation)
		locationGroup.POST("/refresh", r.locationHandler.RefreshLocations)
		locationGroup.POST("/evict", r.locationHandler.EvictExpired)
		locationGroup.DELETE("/cache", r.locationHandler.ClearCache)
		locationGroup.PUT("/:id/bookmark", r.locationHandler.SetBookmark)
		locationGroup.PUT("/:id/availability", r.locationHandler.UpdateAvailability)
		locationGroup.PUT("/:id/rating", r.locationHandler.UpdateRating)
	}

	routeGroup := e.Group("/routes")
	{
		routeGroup.GET("", r.routeHandler.GetRoute)
		routeGroup.POST("/evict", r.routeHandler.EvictUnpopular)
		routeGroup.DELETE("", r.routeHandler.ClearRoutes)
	}
}
