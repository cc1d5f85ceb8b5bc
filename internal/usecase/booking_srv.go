package usecase

import (
	"context"
	"fmt"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/dto/response"
	"trip-booking/pkg/database"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	CancelBooking(ctx context.Context, userID int64, bookingUUID string) (*response.CancelBookingResponse, error)
	GetUserBookings(ctx context.Context, userID int64) ([]response.BookingSummaryResponse, error)
	GetBookingDetail(ctx context.Context, userID int64, bookingUUID string) (*response.BookingDetailResponse, error)
	GetPaymentDetails(ctx context.Context, userID int64, bookingUUID string) (*response.PaymentDetailResponse, error)
}

type bookingService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateBooking reserves seats on a trip and records the booking in one
// transaction. The trip row is locked first so two concurrent requests
// for the last seats cannot both succeed.
func (s *bookingService) CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, ErrValidation("validation failed", errs)
	}

	// 2. Begin transaction
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, ErrInternal("could not start booking", err)
	}
	defer tx.Rollback(ctx)

	// 3. Lock the trip row for the duration of the reservation
	trip, err := s.repo.Trip.LockByUUIDTx(ctx, tx, req.TripID)
	if err != nil {
		s.log.Error("Failed to lock trip", zap.String("trip_uuid", req.TripID), zap.Error(err))
		return nil, ErrInternal("could not load trip", err)
	}
	if trip == nil || !trip.Bookable() {
		// Unpublished or unapproved trips are indistinguishable from
		// absent ones for customers.
		return nil, ErrNotFound(fmt.Sprintf("trip %s not found", req.TripID))
	}

	// 4. Capacity check against the locked row
	remaining := trip.RemainingSeats()
	if req.NumOfPeople > remaining {
		s.log.Info("Booking rejected, not enough seats",
			zap.String("trip_uuid", req.TripID),
			zap.Int("requested", req.NumOfPeople),
			zap.Int("remaining", remaining))
		return nil, ErrConflict(fmt.Sprintf("not enough seats available: requested %d, remaining %d", req.NumOfPeople, remaining))
	}

	// 5. Compute total price; the discounted unit price never goes below zero
	unitPrice := trip.Price - trip.DiscountPrice
	if unitPrice < 0 {
		unitPrice = 0
	}
	totalPrice := unitPrice * float64(req.NumOfPeople)

	// 6. Insert booking
	booking := &entity.Booking{
		UserID:      userID,
		TripID:      trip.ID,
		NumOfPeople: req.NumOfPeople,
		TotalPrice:  totalPrice,
		Status:      entity.BookingStatusPending,
	}
	booking.UUID = utils.GenerateUUID().String()
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return nil, ErrInternal("could not create booking", err)
	}

	// 7. Claim the seats
	if err := s.repo.Trip.AddParticipantsTx(ctx, tx, trip.ID, req.NumOfPeople); err != nil {
		s.log.Error("Failed to add participants", zap.Int64("trip_id", trip.ID), zap.Error(err))
		return nil, ErrInternal("could not reserve seats", err)
	}

	// 8. Commit
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit booking", zap.Error(err))
		return nil, ErrInternal("could not complete booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_uuid", booking.UUID),
		zap.String("trip_uuid", trip.UUID),
		zap.Int("num_of_people", req.NumOfPeople),
		zap.Float64("total_price", totalPrice))

	return &response.CreateBookingResponse{
		BookingUUID: booking.UUID,
		TotalPrice:  totalPrice,
		Status:      booking.Status,
	}, nil
}

// CancelBooking moves a booking to cancelled and returns its seats to
// the trip. Both writes happen in the same transaction.
func (s *bookingService) CancelBooking(ctx context.Context, userID int64, bookingUUID string) (*response.CancelBookingResponse, error) {
	if _, err := utils.ParseUUID(bookingUUID); err != nil {
		return nil, ErrValidation("invalid booking id", map[string]string{"booking_uuid": "must be a valid UUID"})
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, ErrInternal("could not start cancellation", err)
	}
	defer tx.Rollback(ctx)

	// The lookup is scoped to the owner, so another user's booking
	// comes back as not found rather than forbidden.
	booking, err := s.repo.Booking.FindForCancellationTx(ctx, tx, bookingUUID, userID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.String("booking_uuid", bookingUUID), zap.Error(err))
		return nil, ErrInternal("could not load booking", err)
	}
	if booking == nil {
		return nil, ErrNotFound(fmt.Sprintf("booking %s not found", bookingUUID))
	}
	if booking.UserID != userID {
		// Unreachable given the owner-scoped query above
		return nil, ErrNotFound(fmt.Sprintf("booking %s not found", bookingUUID))
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, ErrConflict("booking is already cancelled")
	}
	if !booking.Status.CanTransitionTo(entity.BookingStatusCancelled) {
		return nil, ErrConflict(fmt.Sprintf("booking in status %s cannot be cancelled", booking.Status))
	}

	if err := s.repo.Booking.UpdateStatusTx(ctx, tx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to update booking status", zap.Int64("booking_id", booking.ID), zap.Error(err))
		return nil, ErrInternal("could not cancel booking", err)
	}

	released, err := s.repo.Trip.ReleaseParticipantsTx(ctx, tx, booking.TripID, booking.NumOfPeople)
	if err != nil {
		s.log.Error("Failed to release participants", zap.Int64("trip_id", booking.TripID), zap.Error(err))
		return nil, ErrInternal("could not release seats", err)
	}
	if !released {
		// The trip's booked count is lower than the seats this booking
		// holds. That means the ledger is already inconsistent, so the
		// whole cancellation is aborted instead of making it worse.
		s.log.Error("Seat ledger inconsistency detected",
			zap.Int64("trip_id", booking.TripID),
			zap.Int("num_of_people", booking.NumOfPeople))
		return nil, ErrInternal("seat ledger inconsistency", nil)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit cancellation", zap.Error(err))
		return nil, ErrInternal("could not complete cancellation", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_uuid", bookingUUID),
		zap.Int("released_seats", booking.NumOfPeople))

	return &response.CancelBookingResponse{
		BookingUUID:   bookingUUID,
		ReleasedSeats: booking.NumOfPeople,
	}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int64) ([]response.BookingSummaryResponse, error) {
	summaries, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Int64("user_id", userID), zap.Error(err))
		return nil, ErrInternal("could not list bookings", err)
	}

	result := make([]response.BookingSummaryResponse, 0, len(summaries))
	for _, b := range summaries {
		result = append(result, response.BookingSummaryToResponse(b))
	}
	return result, nil
}

func (s *bookingService) GetBookingDetail(ctx context.Context, userID int64, bookingUUID string) (*response.BookingDetailResponse, error) {
	if _, err := utils.ParseUUID(bookingUUID); err != nil {
		return nil, ErrValidation("invalid booking id", map[string]string{"booking_uuid": "must be a valid UUID"})
	}

	detail, err := s.repo.Booking.DetailByUUIDAndUser(ctx, bookingUUID, userID)
	if err != nil {
		s.log.Error("Failed to load booking detail", zap.String("booking_uuid", bookingUUID), zap.Error(err))
		return nil, ErrInternal("could not load booking", err)
	}
	if detail == nil {
		return nil, ErrNotFound(fmt.Sprintf("booking %s not found", bookingUUID))
	}

	resp := response.BookingDetailToResponse(detail)
	return &resp, nil
}

func (s *bookingService) GetPaymentDetails(ctx context.Context, userID int64, bookingUUID string) (*response.PaymentDetailResponse, error) {
	if _, err := utils.ParseUUID(bookingUUID); err != nil {
		return nil, ErrValidation("invalid booking id", map[string]string{"booking_uuid": "must be a valid UUID"})
	}

	detail, err := s.repo.Booking.PaymentDetails(ctx, bookingUUID, userID)
	if err != nil {
		s.log.Error("Failed to load payment details", zap.String("booking_uuid", bookingUUID), zap.Error(err))
		return nil, ErrInternal("could not load payment details", err)
	}
	if detail == nil {
		return nil, ErrNotFound(fmt.Sprintf("booking %s not found", bookingUUID))
	}

	resp := response.PaymentDetailToResponse(detail)
	return &resp, nil
}
