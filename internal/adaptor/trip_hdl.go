package adaptor

import (
	"net/http"

	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TripHandler struct {
	service usecase.TripService
	log     *zap.Logger
}

func NewTripHandler(service usecase.TripService, log *zap.Logger) *TripHandler {
	return &TripHandler{
		service: service,
		log:     log,
	}
}

// ListTrips handles GET /trips
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.service.ListTrips(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Trips retrieved", trips)
}

// SearchTrips handles GET /trips/search?location=...&gathering_point=...
func (h *TripHandler) SearchTrips(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	gatheringPoint := r.URL.Query().Get("gathering_point")

	trips, err := h.service.SearchTrips(r.Context(), location, gatheringPoint)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Trips retrieved", trips)
}

// GetTripDetail handles GET /trips/{uuid}
func (h *TripHandler) GetTripDetail(w http.ResponseWriter, r *http.Request) {
	tripUUID := chi.URLParam(r, "uuid")

	trip, err := h.service.GetTripDetail(r.Context(), tripUUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Trip retrieved", trip)
}

// GetTripReviews handles GET /trips/{uuid}/reviews
func (h *TripHandler) GetTripReviews(w http.ResponseWriter, r *http.Request) {
	tripUUID := chi.URLParam(r, "uuid")

	reviews, err := h.service.GetTripReviews(r.Context(), tripUUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", reviews)
}
