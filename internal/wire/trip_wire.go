package wire

import (
	"trip-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrip(r chi.Router, tripHandler *adaptor.TripHandler) {
	// Catalog is public. The search route is registered before the
	// wildcard so "search" never matches as a trip uuid.
	r.Route("/trips", func(r chi.Router) {
		r.Get("/", tripHandler.ListTrips)
		r.Get("/search", tripHandler.SearchTrips)
		r.Get("/{uuid}", tripHandler.GetTripDetail)
		r.Get("/{uuid}/reviews", tripHandler.GetTripReviews)
	})
}
