package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	listQuery   = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY entry_date ASC`
	selectQuery = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	insertQuery = `INSERT INTO reservations (id, guest_name, entry_date, checkout_date, room_number, price, deposit, booking_method, guest_phone, guest_count) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

func newMockRepo(t *testing.T) (*ReservationRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReservationRepo(db), mock
}

func reservationRow(id, guest, entry, checkout string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "guest_name", "entry_date", "checkout_date", "room_number",
		"price", "deposit", "booking_method", "guest_phone", "guest_count", "created_at",
	}).AddRow(
		id, guest, mustDate(entry), mustDate(checkout), "101",
		80.0, nil, nil, "+34 600 000 000", 2,
		time.Date(2024, 5, 20, 10, 30, 0, 0, time.UTC),
	)
}

func mustDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestListReturnsRowsInStoreOrder(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{
		"id", "guest_name", "entry_date", "checkout_date", "room_number",
		"price", "deposit", "booking_method", "guest_phone", "guest_count", "created_at",
	}).
		AddRow("a", "Ana", mustDate("2024-06-01"), mustDate("2024-06-03"), "101",
			80.0, 20.0, "phone", "+34 600 000 001", 2, time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)).
		AddRow("b", "Ben", mustDate("2024-06-02"), mustDate("2024-06-04"), "102",
			95.5, nil, nil, "+34 600 000 002", 1, time.Date(2024, 5, 21, 11, 0, 0, 0, time.UTC))
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(rows)

	reservations, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, "a", reservations[0].ID)
	assert.Equal(t, "2024-06-01", reservations[0].EntryDate)
	assert.Equal(t, "2024-06-03", reservations[0].CheckoutDate)
	require.NotNil(t, reservations[0].Deposit)
	assert.Equal(t, 20.0, *reservations[0].Deposit)
	require.NotNil(t, reservations[0].BookingMethod)
	assert.Equal(t, "phone", *reservations[0].BookingMethod)
	assert.Equal(t, "2024-05-20T10:00:00Z", reservations[0].CreatedAt)

	assert.Equal(t, "b", reservations[1].ID)
	assert.Nil(t, reservations[1].Deposit)
	assert.Nil(t, reservations[1].BookingMethod)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyStoreYieldsEmptySlice(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(sqlmock.NewRows([]string{
		"id", "guest_name", "entry_date", "checkout_date", "room_number",
		"price", "deposit", "booking_method", "guest_phone", "guest_count", "created_at",
	}))

	reservations, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reservations)
	assert.Empty(t, reservations)
}

func TestListSurfacesStoreError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestCreateInsertsAndReturnsStoredRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs(sqlmock.AnyArg(), "Ana", "2024-06-01", "2024-06-03", "101",
			80.0, nil, nil, "+34 600 000 000", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(reservationRow("generated-id", "Ana", "2024-06-01", "2024-06-03"))

	res, err := repo.Create(context.Background(), CreateParams{
		GuestName:    "Ana",
		EntryDate:    "2024-06-01",
		CheckoutDate: "2024-06-03",
		RoomNumber:   "101",
		Price:        80,
		GuestPhone:   "+34 600 000 000",
		GuestCount:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", res.ID)
	assert.Equal(t, "2024-06-01", res.EntryDate)
	assert.NotEmpty(t, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET guest_name = ?, price = ? WHERE id = ?`)).
		WithArgs("Carmen", 120.0, "a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("a").
		WillReturnRows(reservationRow("a", "Carmen", "2024-06-01", "2024-06-03"))

	name := "Carmen"
	price := 120.0
	res, err := repo.Update(context.Background(), "a", UpdateParams{GuestName: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Carmen", res.GuestName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET guest_name = ? WHERE id = ?`)).
		WithArgs("Carmen", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	name := "Carmen"
	_, err := repo.Update(context.Background(), "missing", UpdateParams{GuestName: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateWithNoFieldsReadsCurrentRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("a").
		WillReturnRows(reservationRow("a", "Ana", "2024-06-01", "2024-06-03"))

	res, err := repo.Update(context.Background(), "a", UpdateParams{})
	require.NoError(t, err)
	assert.Equal(t, "Ana", res.GuestName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRemovesRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reservations WHERE id = ?`)).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSurfacesStoreError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reservations WHERE id = ?`)).
		WithArgs("a").
		WillReturnError(sql.ErrConnDone)

	assert.ErrorIs(t, repo.Delete(context.Background(), "a"), sql.ErrConnDone)
}
