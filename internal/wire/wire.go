package wire

import (
	"net/http"

	"trip-booking/internal/adaptor"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/usecase"
	"trip-booking/pkg/database"
	"trip-booking/pkg/mailer"
	"trip-booking/pkg/middleware"
	"trip-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(config *utils.Config, db database.PgxIface, repo *repository.Repository, mail mailer.Mailer, logger *zap.Logger) *App {
	service := usecase.NewService(config, db, repo, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireTrip(r, handler.Trip)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireReview(r, handler.Review, handler.Complaint, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
