package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testTripUUID = "7b0e3cde-4a7f-4c57-9f8a-3a2d6f1e5b90"

func newBookingTestService(t *testing.T) (BookingService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	log := zap.NewNop()
	repo := repository.NewRepository(mock, log)
	return NewBookingService(mock, repo, log), mock
}

func lockedTripRows(price, discount float64, maxSeats, booked int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "uuid", "provider_id", "title", "price", "discount_price",
		"max_participants", "booked_participants", "status", "approval_status", "is_deleted",
	}).AddRow(
		int64(7), testTripUUID, int64(2), "Mount Bromo Sunrise", price, discount,
		maxSeats, booked, entity.TripStatusPublished, entity.ApprovalApproved, false,
	)
}

func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()

	var svcErr *Error
	require.True(t, errors.As(err, &svcErr), "expected a service error, got %v", err)
	assert.Equal(t, kind, svcErr.Kind)
}

func TestCreateBooking(t *testing.T) {
	svc, mock := newBookingTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testTripUUID).
		WillReturnRows(lockedTripRows(150, 25, 20, 15))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), int64(11), int64(7), 3, 375.0,
			entity.BookingStatusPending, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectExec("booked_participants \\+").
		WithArgs(int64(7), 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	resp, err := svc.CreateBooking(context.Background(), 11, &request.CreateBookingRequest{
		TripID:      testTripUUID,
		NumOfPeople: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingUUID)
	assert.Equal(t, 375.0, resp.TotalPrice)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingDiscountNeverNegative(t *testing.T) {
	svc, mock := newBookingTestService(t)

	// Discount larger than the price clamps the unit price to zero
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testTripUUID).
		WillReturnRows(lockedTripRows(50, 60, 20, 0))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), int64(11), int64(7), 2, 0.0,
			entity.BookingStatusPending, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(43)))
	mock.ExpectExec("booked_participants \\+").
		WithArgs(int64(7), 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	resp, err := svc.CreateBooking(context.Background(), 11, &request.CreateBookingRequest{
		TripID:      testTripUUID,
		NumOfPeople: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.TotalPrice)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingNotEnoughSeats(t *testing.T) {
	svc, mock := newBookingTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testTripUUID).
		WillReturnRows(lockedTripRows(150, 25, 20, 18))
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 11, &request.CreateBookingRequest{
		TripID:      testTripUUID,
		NumOfPeople: 3,
	})
	assertKind(t, err, KindConflict)
	assert.Contains(t, err.Error(), "remaining 2")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingTripNotFound(t *testing.T) {
	svc, mock := newBookingTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testTripUUID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 11, &request.CreateBookingRequest{
		TripID:      testTripUUID,
		NumOfPeople: 1,
	})
	assertKind(t, err, KindNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUnpublishedTripHidden(t *testing.T) {
	svc, mock := newBookingTestService(t)

	rows := pgxmock.NewRows([]string{
		"id", "uuid", "provider_id", "title", "price", "discount_price",
		"max_participants", "booked_participants", "status", "approval_status", "is_deleted",
	}).AddRow(
		int64(7), testTripUUID, int64(2), "Mount Bromo Sunrise", 150.0, 25.0,
		20, 0, entity.TripStatusDraft, entity.ApprovalApproved, false,
	)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testTripUUID).
		WillReturnRows(rows)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), 11, &request.CreateBookingRequest{
		TripID:      testTripUUID,
		NumOfPeople: 1,
	})
	assertKind(t, err, KindNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newBookingTestService(t)

	tests := []struct {
		name string
		req  request.CreateBookingRequest
	}{
		{"zero people", request.CreateBookingRequest{TripID: testTripUUID, NumOfPeople: 0}},
		{"negative people", request.CreateBookingRequest{TripID: testTripUUID, NumOfPeople: -2}},
		{"malformed trip id", request.CreateBookingRequest{TripID: "not-a-uuid", NumOfPeople: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), 11, &tt.req)
			assertKind(t, err, KindValidation)
		})
	}
}

func bookingRow(status entity.BookingStatus, bookingUUID string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "uuid", "user_id", "trip_id", "num_of_people", "total_price", "status", "created_at", "updated_at",
	}).AddRow(int64(42), bookingUUID, int64(11), int64(7), 3, 375.0, status, now, now)
}

func TestCancelBooking(t *testing.T) {
	svc, mock := newBookingTestService(t)

	bookingUUID := "0f6a2d5c-8e3b-4c9f-a1d7-2b5e9c4f0a63"

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").
		WithArgs(bookingUUID, int64(11)).
		WillReturnRows(bookingRow(entity.BookingStatusPending, bookingUUID))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(int64(42), entity.BookingStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("booked_participants >=").
		WithArgs(int64(7), 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	resp, err := svc.CancelBooking(context.Background(), 11, bookingUUID)
	require.NoError(t, err)
	assert.Equal(t, bookingUUID, resp.BookingUUID)
	assert.Equal(t, 3, resp.ReleasedSeats)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateThenCancelRestoresCounter(t *testing.T) {
	svc, mock := newBookingTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testTripUUID).
		WillReturnRows(lockedTripRows(150, 25, 20, 15))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), int64(11), int64(7), 3, 375.0,
			entity.BookingStatusPending, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectExec("booked_participants \\+").
		WithArgs(int64(7), 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	created, err := svc.CreateBooking(context.Background(), 11, &request.CreateBookingRequest{
		TripID:      testTripUUID,
		NumOfPeople: 3,
	})
	require.NoError(t, err)

	// Cancelling the booking just made gives back exactly the seats it took
	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").
		WithArgs(created.BookingUUID, int64(11)).
		WillReturnRows(bookingRow(entity.BookingStatusPending, created.BookingUUID))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(int64(42), entity.BookingStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("booked_participants >=").
		WithArgs(int64(7), 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	cancelled, err := svc.CancelBooking(context.Background(), 11, created.BookingUUID)
	require.NoError(t, err)
	assert.Equal(t, created.BookingUUID, cancelled.BookingUUID)
	assert.Equal(t, 3, cancelled.ReleasedSeats)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	svc, mock := newBookingTestService(t)

	bookingUUID := "0f6a2d5c-8e3b-4c9f-a1d7-2b5e9c4f0a63"

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").
		WithArgs(bookingUUID, int64(11)).
		WillReturnRows(bookingRow(entity.BookingStatusCancelled, bookingUUID))
	mock.ExpectRollback()

	_, err := svc.CancelBooking(context.Background(), 11, bookingUUID)
	assertKind(t, err, KindConflict)
	assert.Contains(t, err.Error(), "already cancelled")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingCompleted(t *testing.T) {
	svc, mock := newBookingTestService(t)

	bookingUUID := "0f6a2d5c-8e3b-4c9f-a1d7-2b5e9c4f0a63"

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").
		WithArgs(bookingUUID, int64(11)).
		WillReturnRows(bookingRow(entity.BookingStatusCompleted, bookingUUID))
	mock.ExpectRollback()

	_, err := svc.CancelBooking(context.Background(), 11, bookingUUID)
	assertKind(t, err, KindConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingForeignOwner(t *testing.T) {
	svc, mock := newBookingTestService(t)

	bookingUUID := "0f6a2d5c-8e3b-4c9f-a1d7-2b5e9c4f0a63"

	// The owner-scoped lookup returns nothing for another user's booking
	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").
		WithArgs(bookingUUID, int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.CancelBooking(context.Background(), 99, bookingUUID)
	assertKind(t, err, KindNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingLedgerInconsistency(t *testing.T) {
	svc, mock := newBookingTestService(t)

	bookingUUID := "0f6a2d5c-8e3b-4c9f-a1d7-2b5e9c4f0a63"

	// Guarded decrement refuses, the whole cancellation rolls back
	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").
		WithArgs(bookingUUID, int64(11)).
		WillReturnRows(bookingRow(entity.BookingStatusPending, bookingUUID))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(int64(42), entity.BookingStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("booked_participants >=").
		WithArgs(int64(7), 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := svc.CancelBooking(context.Background(), 11, bookingUUID)
	assertKind(t, err, KindInternal)

	assert.NoError(t, mock.ExpectationsWereMet())
}
