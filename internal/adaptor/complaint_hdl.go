package adaptor

import (
	"encoding/json"
	"net/http"

	"trip-booking/internal/dto/request"
	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type ComplaintHandler struct {
	service usecase.ComplaintService
	log     *zap.Logger
}

func NewComplaintHandler(service usecase.ComplaintService, log *zap.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		service: service,
		log:     log,
	}
}

// SubmitComplaint handles POST /complaints
func (h *ComplaintHandler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SubmitComplaint(r.Context(), identity.InternalID, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Complaint submitted", nil)
}
