package adaptor

import (
	"encoding/json"
	"net/http"

	"trip-booking/internal/dto/request"
	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateBooking(r.Context(), identity.InternalID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Booking created", resp)
}

// CancelBooking handles PUT /booking/cancel/{uuid}
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingUUID := chi.URLParam(r, "uuid")

	resp, err := h.service.CancelBooking(r.Context(), identity.InternalID, bookingUUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", resp)
}

// ListBookings handles GET /booking
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetUserBookings(r.Context(), identity.InternalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}

// GetBookingDetail handles GET /booking/{uuid}
func (h *BookingHandler) GetBookingDetail(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingUUID := chi.URLParam(r, "uuid")

	booking, err := h.service.GetBookingDetail(r.Context(), identity.InternalID, bookingUUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", booking)
}

// GetPaymentDetails handles GET /booking/{uuid}/payment-details
func (h *BookingHandler) GetPaymentDetails(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingUUID := chi.URLParam(r, "uuid")

	details, err := h.service.GetPaymentDetails(r.Context(), identity.InternalID, bookingUUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Payment details retrieved", details)
}
