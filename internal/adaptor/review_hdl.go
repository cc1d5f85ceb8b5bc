package adaptor

import (
	"encoding/json"
	"net/http"

	"trip-booking/internal/dto/request"
	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// SubmitReview handles POST /reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.SubmitReview(r.Context(), identity.InternalID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Review submitted", resp)
}
