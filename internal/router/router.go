package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/iliyamo/hotel-reservation-calendar/internal/handler" // handlers implementing the endpoints
)

// RegisterRoutes registers routes that sit outside the API group on the
// provided Echo instance.  Currently it exposes only a health check,
// which load balancers and monitoring systems use to verify that the
// service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the reservation CRUD surface and the calendar
// views under /v1.  The optional limiter middleware is applied to the
// whole group; pass nil to run without rate limiting.
func RegisterAPI(e *echo.Echo, r *handler.ReservationHandler, cal *handler.CalendarHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if limiter != nil {
		g.Use(limiter)
	}

	// Reservation CRUD.  Update and delete take the reservation id in
	// the JSON body rather than the path, matching the form clients.
	g.GET("/reservations", r.List)
	g.POST("/reservations", r.Create)
	g.PUT("/reservations", r.Update)
	g.DELETE("/reservations", r.Delete)

	// Calendar views: the full per-date index for the grid, and the
	// single-date occupancy lookup for the detail view.
	g.GET("/calendar", cal.Index)
	g.GET("/calendar/:date", cal.Day)
}
