package usecase

import (
	"trip-booking/internal/data/repository"
	"trip-booking/pkg/database"
	"trip-booking/pkg/mailer"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service groups semua use case services
type Service struct {
	Auth      AuthService
	Trip      TripService
	Booking   BookingService
	Review    ReviewService
	Complaint ComplaintService
	User      UserService
}

func NewService(cfg *utils.Config, db database.PgxIface, repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, mail, log),
		Trip:      NewTripService(repo, log),
		Booking:   NewBookingService(db, repo, log),
		Review:    NewReviewService(repo, log),
		Complaint: NewComplaintService(repo, log),
		User:      NewUserService(repo, log),
	}
}
