package wire

import (
	"trip-booking/internal/adaptor"
	"trip-booking/internal/data/repository"
	"trip-booking/pkg/middleware"
	"trip-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/profile", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, repo.User, log))

		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
		r.Delete("/", userHandler.DeactivateAccount)
	})
}
