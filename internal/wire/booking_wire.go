package wire

import (
	"trip-booking/internal/adaptor"
	"trip-booking/internal/data/repository"
	"trip-booking/pkg/middleware"
	"trip-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/booking", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, repo.User, log))

		// The booking list is the customer's own history only
		r.With(middleware.RequireRoles("customer")).Get("/", bookingHandler.ListBookings)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles("customer", "admin"))

			r.Post("/", bookingHandler.CreateBooking)
			r.Put("/cancel/{uuid}", bookingHandler.CancelBooking)
			r.Get("/{uuid}", bookingHandler.GetBookingDetail)
			r.Get("/{uuid}/payment-details", bookingHandler.GetPaymentDetails)
		})
	})
}
