package handler

import (
	"context"  // contexts for event publication
	"errors"   // for errors.Is comparisons
	"net/http" // HTTP status codes
	"strings"  // id presence checks
	"time"     // event timestamps

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation-calendar/internal/calendar"
	"github.com/iliyamo/hotel-reservation-calendar/internal/model"
	"github.com/iliyamo/hotel-reservation-calendar/internal/queue"
	"github.com/iliyamo/hotel-reservation-calendar/internal/repository"
)

// EventPublisher sends a lifecycle event to the broker.  Publication is
// best effort: a returned error is logged by the publisher itself and
// never fails the request.
type EventPublisher func(ctx context.Context, ev queue.ReservationEvent) error

// ReservationHandler serves the CRUD surface over reservations.  Field
// invariants (entry before checkout, guest count, non-negative amounts)
// are enforced here, at the create/update boundary; the repository does
// no validation of its own.
type ReservationHandler struct {
	Repo    *repository.ReservationRepo // access to the reservations table
	Publish EventPublisher              // optional lifecycle event publisher
}

// NewReservationHandler constructs a ReservationHandler.  The repository
// must be non-nil; the publisher may be nil to disable events.
func NewReservationHandler(repo *repository.ReservationRepo, publish EventPublisher) *ReservationHandler {
	if repo == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{Repo: repo, Publish: publish}
}

// List handles GET /v1/reservations.  It returns every reservation
// ordered ascending by entry date.  Backend failures surface verbatim
// with a 500, matching the store gateway contract; nothing is retried.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, reservations)
}

type createRequest struct {
	GuestName     string   `json:"guest_name"`
	EntryDate     string   `json:"entry_date"`
	CheckoutDate  string   `json:"checkout_date"`
	RoomNumber    string   `json:"room_number"`
	Price         float64  `json:"price"`
	Deposit       *float64 `json:"deposit"`
	BookingMethod *string  `json:"booking_method"`
	GuestPhone    string   `json:"guest_phone"`
	GuestCount    int      `json:"guest_count"`
}

// Create handles POST /v1/reservations.  The store assigns the id and
// creation timestamp; the created row is returned with a 201.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body createRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := validateStay(body.EntryDate, body.CheckoutDate); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if msg := validateAmounts(&body.Price, body.Deposit, &body.GuestCount); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	res, err := h.Repo.Create(c.Request().Context(), repository.CreateParams{
		GuestName:     body.GuestName,
		EntryDate:     body.EntryDate,
		CheckoutDate:  body.CheckoutDate,
		RoomNumber:    body.RoomNumber,
		Price:         body.Price,
		Deposit:       body.Deposit,
		BookingMethod: body.BookingMethod,
		GuestPhone:    body.GuestPhone,
		GuestCount:    body.GuestCount,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.publishEvent(c, queue.ActionCreated, res)
	return c.JSON(http.StatusCreated, res)
}

type updateRequest struct {
	ID            string   `json:"id"`
	GuestName     *string  `json:"guest_name"`
	EntryDate     *string  `json:"entry_date"`
	CheckoutDate  *string  `json:"checkout_date"`
	RoomNumber    *string  `json:"room_number"`
	Price         *float64 `json:"price"`
	Deposit       *float64 `json:"deposit"`
	BookingMethod *string  `json:"booking_method"`
	GuestPhone    *string  `json:"guest_phone"`
	GuestCount    *int     `json:"guest_count"`
}

// Update handles PUT /v1/reservations.  The body carries the id plus any
// subset of fields to change.  A missing id is rejected with a 400
// before the store is touched; an id matching no row yields a 404
// rather than silently reporting success.
func (h *ReservationHandler) Update(c echo.Context) error {
	var body updateRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.ID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
	}
	if body.EntryDate != nil || body.CheckoutDate != nil {
		if msg := validateStayPartial(body.EntryDate, body.CheckoutDate); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
	}
	if msg := validateAmounts(body.Price, body.Deposit, body.GuestCount); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	res, err := h.Repo.Update(c.Request().Context(), body.ID, repository.UpdateParams{
		GuestName:     body.GuestName,
		EntryDate:     body.EntryDate,
		CheckoutDate:  body.CheckoutDate,
		RoomNumber:    body.RoomNumber,
		Price:         body.Price,
		Deposit:       body.Deposit,
		BookingMethod: body.BookingMethod,
		GuestPhone:    body.GuestPhone,
		GuestCount:    body.GuestCount,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.publishEvent(c, queue.ActionUpdated, res)
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /v1/reservations.  The body carries the id.  The
// response is an acknowledgement with no payload beyond the success flag.
func (h *ReservationHandler) Delete(c echo.Context) error {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.ID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
	}
	if err := h.Repo.Delete(c.Request().Context(), body.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.publishEvent(c, queue.ActionDeleted, model.Reservation{ID: body.ID})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// publishEvent emits a lifecycle event when a publisher is configured.
// Failures are swallowed; the publisher logs them.
func (h *ReservationHandler) publishEvent(c echo.Context, action string, res model.Reservation) {
	if h.Publish == nil {
		return
	}
	_ = h.Publish(c.Request().Context(), queue.ReservationEvent{
		Action:        action,
		ReservationID: res.ID,
		GuestName:     res.GuestName,
		RoomNumber:    res.RoomNumber,
		EntryDate:     res.EntryDate,
		CheckoutDate:  res.CheckoutDate,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

// validateStay checks the full pair of stay dates on create: both must
// parse and the entry date must be strictly before checkout.
func validateStay(entry, checkout string) string {
	if _, err := calendar.ParseDate(entry); err != nil {
		return "invalid entry_date"
	}
	if _, err := calendar.ParseDate(checkout); err != nil {
		return "invalid checkout_date"
	}
	if entry >= checkout {
		return "entry_date must be before checkout_date"
	}
	return ""
}

// validateStayPartial checks whichever stay dates a partial update
// supplies.  The ordering invariant can only be checked when both dates
// travel together, which is what the edit form always sends.
func validateStayPartial(entry, checkout *string) string {
	if entry != nil {
		if _, err := calendar.ParseDate(*entry); err != nil {
			return "invalid entry_date"
		}
	}
	if checkout != nil {
		if _, err := calendar.ParseDate(*checkout); err != nil {
			return "invalid checkout_date"
		}
	}
	if entry != nil && checkout != nil && *entry >= *checkout {
		return "entry_date must be before checkout_date"
	}
	return ""
}

// validateAmounts checks the numeric invariants shared by create and
// update.  Nil pointers mean the field is not being set.
func validateAmounts(price, deposit *float64, guestCount *int) string {
	if price != nil && *price < 0 {
		return "price must not be negative"
	}
	if deposit != nil && *deposit < 0 {
		return "deposit must not be negative"
	}
	if guestCount != nil && *guestCount < 1 {
		return "guest_count must be at least 1"
	}
	return ""
}
