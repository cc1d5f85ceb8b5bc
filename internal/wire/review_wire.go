package wire

import (
	"trip-booking/internal/adaptor"
	"trip-booking/internal/data/repository"
	"trip-booking/pkg/middleware"
	"trip-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	complaintHandler *adaptor.ComplaintHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(config.JWT, repo.User, log)

	r.With(auth, middleware.RequireRoles("customer", "admin")).Post("/reviews", reviewHandler.SubmitReview)
	r.With(auth, middleware.RequireRoles("customer")).Post("/complaints", complaintHandler.SubmitComplaint)
}
