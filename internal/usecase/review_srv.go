package usecase

import (
	"context"
	"fmt"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/dto/response"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, userID int64, req *request.SubmitReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// SubmitReview records a review for a trip the user has completed. One
// review per completed booking.
func (s *reviewService) SubmitReview(ctx context.Context, userID int64, req *request.SubmitReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, ErrValidation("validation failed", errs)
	}

	tripID, found, err := s.repo.Trip.ResolveID(ctx, req.TripUUID)
	if err != nil {
		s.log.Error("Failed to resolve trip", zap.String("trip_uuid", req.TripUUID), zap.Error(err))
		return nil, ErrInternal("could not submit review", err)
	}
	if !found {
		return nil, ErrNotFound(fmt.Sprintf("trip %s not found", req.TripUUID))
	}

	bookingID, eligible, err := s.repo.Review.FindReviewableBookingID(ctx, userID, tripID)
	if err != nil {
		s.log.Error("Failed to check review eligibility", zap.Error(err))
		return nil, ErrInternal("could not submit review", err)
	}
	if !eligible {
		return nil, ErrForbidden("reviews require a completed booking that has not been reviewed yet")
	}

	review := &entity.Review{
		UUID:      utils.GenerateUUID().String(),
		UserID:    userID,
		TripID:    tripID,
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	review.CreatedAt = time.Now()

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err))
		return nil, ErrInternal("could not submit review", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_uuid", review.UUID),
		zap.String("trip_uuid", req.TripUUID),
		zap.Float64("rating", req.Rating))

	return &response.ReviewResponse{
		UUID:      review.UUID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}
