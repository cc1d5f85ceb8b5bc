package adaptor

import (
	"encoding/json"
	"net/http"

	"trip-booking/internal/dto/request"
	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetProfile handles GET /profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), identity.InternalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", profile)
}

// UpdateProfile handles PUT /profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), identity.InternalID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

// DeactivateAccount handles DELETE /profile
func (h *UserHandler) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeactivateAccount(r.Context(), identity.InternalID); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Your account has been deactivated. You will not be able to log in until it is reactivated.", nil)
}
