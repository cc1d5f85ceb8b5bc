package repository

import (
	"trip-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Trip          TripRepository
	Booking       BookingRepository
	Review        ReviewRepository
	Complaint     ComplaintRepository
	PasswordReset PasswordResetRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Trip:          NewTripRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		Review:        NewReviewRepository(db, log),
		Complaint:     NewComplaintRepository(db, log),
		PasswordReset: NewPasswordResetRepository(db, log),
	}
}
