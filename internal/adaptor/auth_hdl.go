package adaptor

import (
	"encoding/json"
	"net/http"

	"trip-booking/internal/dto/request"
	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// ForgotPassword handles POST /forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), &req); err != nil {
		writeServiceError(w, err)
		return
	}

	// Same response whether or not the email exists
	utils.ResponseSuccess(w, "If the email is registered, a reset code has been sent", nil)
}

// ResetPassword handles POST /reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Password has been reset", nil)
}
