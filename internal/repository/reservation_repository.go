package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation-calendar/internal/model"
)

const dateLayout = "2006-01-02"

// reservationColumns is the canonical column list used by every SELECT
// so scanReservation can stay in one place.
const reservationColumns = `id, guest_name, entry_date, checkout_date, room_number, price, deposit, booking_method, guest_phone, guest_count, created_at`

// ReservationRepo provides CRUD operations for reservations.  Each call
// is a single independent round trip to MySQL; there is no transaction
// spanning operations and no retry.  Backend errors are returned to the
// caller unwrapped so they can be surfaced verbatim.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle for callers that need it.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// CreateParams carries the caller-supplied fields for a new reservation.
// The id and creation timestamp are assigned by the store.
type CreateParams struct {
	GuestName     string
	EntryDate     string
	CheckoutDate  string
	RoomNumber    string
	Price         float64
	Deposit       *float64
	BookingMethod *string
	GuestPhone    string
	GuestCount    int
}

// UpdateParams carries a partial update.  Nil fields are left untouched.
type UpdateParams struct {
	GuestName     *string
	EntryDate     *string
	CheckoutDate  *string
	RoomNumber    *string
	Price         *float64
	Deposit       *float64
	BookingMethod *string
	GuestPhone    *string
	GuestCount    *int
}

// List returns all reservations ordered ascending by entry date.  When
// no reservations exist an empty slice is returned.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY entry_date ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reservations := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Create inserts one reservation row.  The id is generated here as a
// UUID and created_at is assigned by the database default.  The full row
// is queried back so the caller receives the store-assigned timestamp.
func (r *ReservationRepo) Create(ctx context.Context, p CreateParams) (model.Reservation, error) {
	id := uuid.NewString()
	const q = `INSERT INTO reservations (id, guest_name, entry_date, checkout_date, room_number, price, deposit, booking_method, guest_phone, guest_count) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		id, p.GuestName, p.EntryDate, p.CheckoutDate, p.RoomNumber,
		p.Price, p.Deposit, p.BookingMethod, p.GuestPhone, p.GuestCount,
	)
	if err != nil {
		return model.Reservation{}, err
	}
	return r.getByID(ctx, id)
}

// Update applies the non-nil fields of p to the reservation with the
// given id and returns the updated row.  ErrNotFound is returned when
// the id matches no row.  An update with no fields set is a no-op read.
func (r *ReservationRepo) Update(ctx context.Context, id string, p UpdateParams) (model.Reservation, error) {
	assignments := make([]string, 0, 9)
	args := make([]interface{}, 0, 10)
	if p.GuestName != nil {
		assignments = append(assignments, "guest_name = ?")
		args = append(args, *p.GuestName)
	}
	if p.EntryDate != nil {
		assignments = append(assignments, "entry_date = ?")
		args = append(args, *p.EntryDate)
	}
	if p.CheckoutDate != nil {
		assignments = append(assignments, "checkout_date = ?")
		args = append(args, *p.CheckoutDate)
	}
	if p.RoomNumber != nil {
		assignments = append(assignments, "room_number = ?")
		args = append(args, *p.RoomNumber)
	}
	if p.Price != nil {
		assignments = append(assignments, "price = ?")
		args = append(args, *p.Price)
	}
	if p.Deposit != nil {
		assignments = append(assignments, "deposit = ?")
		args = append(args, *p.Deposit)
	}
	if p.BookingMethod != nil {
		assignments = append(assignments, "booking_method = ?")
		args = append(args, *p.BookingMethod)
	}
	if p.GuestPhone != nil {
		assignments = append(assignments, "guest_phone = ?")
		args = append(args, *p.GuestPhone)
	}
	if p.GuestCount != nil {
		assignments = append(assignments, "guest_count = ?")
		args = append(args, *p.GuestCount)
	}
	if len(assignments) == 0 {
		return r.getByID(ctx, id)
	}
	q := `UPDATE reservations SET ` + strings.Join(assignments, ", ") + ` WHERE id = ?`
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return model.Reservation{}, err
	}
	// MySQL reports 0 affected rows both for a missing id and for an
	// update that changes nothing, so existence is decided by the
	// select-back instead of RowsAffected.
	return r.getByID(ctx, id)
}

// Delete removes the reservation with the given id.  Deleting an id
// that does not exist is not an error; the caller only receives an
// acknowledgement either way.
func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM reservations WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *ReservationRepo) getByID(ctx context.Context, id string) (model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, ErrNotFound
	}
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation reads one row in reservationColumns order and converts
// DB types to the wire shape: DATE columns to YYYY-MM-DD strings,
// created_at to RFC3339 in UTC, NULLs to nil pointers.
func scanReservation(s scanner) (model.Reservation, error) {
	var res model.Reservation
	var entry, checkout, created time.Time
	var deposit sql.NullFloat64
	var method sql.NullString
	if err := s.Scan(
		&res.ID, &res.GuestName, &entry, &checkout, &res.RoomNumber,
		&res.Price, &deposit, &method, &res.GuestPhone, &res.GuestCount, &created,
	); err != nil {
		return model.Reservation{}, err
	}
	res.EntryDate = entry.Format(dateLayout)
	res.CheckoutDate = checkout.Format(dateLayout)
	res.CreatedAt = created.UTC().Format(time.RFC3339)
	if deposit.Valid {
		d := deposit.Float64
		res.Deposit = &d
	}
	if method.Valid {
		m := method.String
		res.BookingMethod = &m
	}
	return res, nil
}
