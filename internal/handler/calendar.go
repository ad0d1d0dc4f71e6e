package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-calendar/internal/calendar"
	"github.com/iliyamo/hotel-reservation-calendar/internal/repository"
)

// CalendarHandler serves the aggregated calendar views.  Both endpoints
// fetch the current reservation snapshot and run the pure aggregation
// functions over it; nothing is cached, so the view always reflects the
// latest store contents.
type CalendarHandler struct {
	Repo *repository.ReservationRepo
}

// NewCalendarHandler constructs a CalendarHandler.  The repository must
// be non-nil.
func NewCalendarHandler(repo *repository.ReservationRepo) *CalendarHandler {
	if repo == nil {
		panic("nil repository passed to NewCalendarHandler")
	}
	return &CalendarHandler{Repo: repo}
}

// Index handles GET /v1/calendar.  It returns a map from every date
// touched by any reservation to its arriving/staying/departing buckets,
// the shape the calendar grid renders from.
func (h *CalendarHandler) Index(c echo.Context) error {
	reservations, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	index, err := calendar.BuildDateIndex(reservations)
	if err != nil {
		// Stored dates are validated on the way in, so this only fires
		// on rows written outside the API.
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, index)
}

// Day handles GET /v1/calendar/:date.  It answers the single-date
// occupancy query used by the date-click detail view.  A malformed date
// is rejected before the store is consulted.
func (h *CalendarHandler) Day(c echo.Context) error {
	date := c.Param("date")
	if _, err := calendar.ParseDate(date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	reservations, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	buckets, err := calendar.OccupancyForDate(reservations, date)
	if errors.Is(err, calendar.ErrInvalidDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, buckets)
}
