package adaptor

import (
	"trip-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Trip      *TripHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
	Complaint *ComplaintHandler
	User      *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Trip:      NewTripHandler(service.Trip, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Review:    NewReviewHandler(service.Review, log),
		Complaint: NewComplaintHandler(service.Complaint, log),
		User:      NewUserHandler(service.User, log),
	}
}
