package wire

import (
	"trip-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes (tanpa auth middleware)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/forgot-password", authHandler.ForgotPassword)
	r.Post("/reset-password", authHandler.ResetPassword)
}
