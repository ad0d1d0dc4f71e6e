// Package calendar turns a flat list of reservations into per-date views.
// All functions are pure: they never mutate their input and calling them
// twice on the same snapshot yields identical results.  Dates are ISO
// YYYY-MM-DD strings throughout; for that layout lexicographic string
// comparison equals chronological comparison, so the functions compare
// dates as strings directly.
package calendar

import (
	"errors"
	"time"

	"github.com/iliyamo/hotel-reservation-calendar/internal/model"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string is not a valid ISO
// YYYY-MM-DD date.  Malformed dates must be rejected here, at the
// ingestion boundary; the bucket classification itself cannot fail on
// validated input.
var ErrInvalidDate = errors.New("invalid date")

// DayBuckets classifies the reservations touching one calendar date.
// A reservation is arriving on its entry date, departing on its checkout
// date and staying on every date strictly in between.  Order within each
// bucket follows the input order of the reservation list.
type DayBuckets struct {
	Arriving  []model.Reservation `json:"arriving"`
	Staying   []model.Reservation `json:"staying"`
	Departing []model.Reservation `json:"departing"`
}

// ParseDate validates an ISO date string and returns its time value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DatesBetween enumerates every calendar date in the inclusive closed
// range [start, end] by repeated day increments.  An end before start
// yields an empty slice.  Either bound failing to parse returns
// ErrInvalidDate.
func DatesBetween(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}

// BuildDateIndex maps every date touched by any reservation to its
// arriving/staying/departing buckets.  Entries accumulate across all
// reservations touching a date.  The entry and checkout checks are
// deliberately independent: a reservation whose entry and checkout fall
// on the same day is both arriving and departing on that date and never
// staying.  Returns ErrInvalidDate if any reservation carries a
// malformed date.
func BuildDateIndex(reservations []model.Reservation) (map[string]*DayBuckets, error) {
	index := make(map[string]*DayBuckets)
	for _, r := range reservations {
		days, err := DatesBetween(r.EntryDate, r.CheckoutDate)
		if err != nil {
			return nil, err
		}
		for _, day := range days {
			b := index[day]
			if b == nil {
				b = newDayBuckets()
				index[day] = b
			}
			if day == r.EntryDate {
				b.Arriving = append(b.Arriving, r)
			}
			if day == r.CheckoutDate {
				b.Departing = append(b.Departing, r)
			}
			if day != r.EntryDate && day != r.CheckoutDate {
				b.Staying = append(b.Staying, r)
			}
		}
	}
	return index, nil
}

// OccupancyForDate filters the reservations relevant to a single date.
// It is computed independently of BuildDateIndex so the date-detail view
// does not need the full index.  Staying uses strict inequality on both
// sides: a reservation is never staying on its own arrival or departure
// day.  Returns ErrInvalidDate when the requested date is malformed.
func OccupancyForDate(reservations []model.Reservation, date string) (DayBuckets, error) {
	if _, err := ParseDate(date); err != nil {
		return DayBuckets{}, err
	}
	b := newDayBuckets()
	for _, r := range reservations {
		if r.EntryDate == date {
			b.Arriving = append(b.Arriving, r)
		}
		if r.CheckoutDate == date {
			b.Departing = append(b.Departing, r)
		}
		if r.EntryDate < date && date < r.CheckoutDate {
			b.Staying = append(b.Staying, r)
		}
	}
	return *b, nil
}

// newDayBuckets allocates buckets with empty slices so empty buckets
// serialize as [] rather than null.
func newDayBuckets() *DayBuckets {
	return &DayBuckets{
		Arriving:  []model.Reservation{},
		Staying:   []model.Reservation{},
		Departing: []model.Reservation{},
	}
}
