package usecase

import (
	"context"
	"fmt"
	"strings"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/response"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type TripService interface {
	ListTrips(ctx context.Context) ([]response.TripSummaryResponse, error)
	SearchTrips(ctx context.Context, location, gatheringPoint string) ([]response.TripSummaryResponse, error)
	GetTripDetail(ctx context.Context, tripUUID string) (*response.TripDetailResponse, error)
	GetTripReviews(ctx context.Context, tripUUID string) ([]response.ReviewResponse, error)
}

type tripService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTripService(repo *repository.Repository, log *zap.Logger) TripService {
	return &tripService{
		repo: repo,
		log:  log.With(zap.String("service", "trip")),
	}
}

func (s *tripService) ListTrips(ctx context.Context) ([]response.TripSummaryResponse, error) {
	trips, err := s.repo.Trip.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list trips", zap.Error(err))
		return nil, ErrInternal("could not list trips", err)
	}

	result := make([]response.TripSummaryResponse, 0, len(trips))
	for _, t := range trips {
		result = append(result, response.TripSummaryToResponse(t))
	}
	return result, nil
}

// SearchTrips matches on location first; the gathering point filter is
// only consulted when no location keyword is given.
func (s *tripService) SearchTrips(ctx context.Context, location, gatheringPoint string) ([]response.TripSummaryResponse, error) {
	location = strings.TrimSpace(location)
	gatheringPoint = strings.TrimSpace(gatheringPoint)

	if location == "" && gatheringPoint == "" {
		return nil, ErrValidation("missing search keyword", map[string]string{
			"location": "provide location or gathering_point",
		})
	}

	var (
		trips []*entity.TripSummary
		err   error
	)
	if location != "" {
		trips, err = s.repo.Trip.SearchByLocation(ctx, location)
	} else {
		trips, err = s.repo.Trip.SearchByGatheringPoint(ctx, gatheringPoint)
	}
	if err != nil {
		s.log.Error("Failed to search trips", zap.Error(err))
		return nil, ErrInternal("could not search trips", err)
	}

	result := make([]response.TripSummaryResponse, 0, len(trips))
	for _, t := range trips {
		result = append(result, response.TripSummaryToResponse(t))
	}
	return result, nil
}

func (s *tripService) GetTripDetail(ctx context.Context, tripUUID string) (*response.TripDetailResponse, error) {
	if _, err := utils.ParseUUID(tripUUID); err != nil {
		return nil, ErrValidation("invalid trip id", map[string]string{"trip_uuid": "must be a valid UUID"})
	}

	trip, err := s.repo.Trip.FindByUUID(ctx, tripUUID)
	if err != nil {
		s.log.Error("Failed to load trip", zap.String("trip_uuid", tripUUID), zap.Error(err))
		return nil, ErrInternal("could not load trip", err)
	}
	if trip == nil {
		return nil, ErrNotFound(fmt.Sprintf("trip %s not found", tripUUID))
	}

	resp := response.TripDetailToResponse(trip)
	return &resp, nil
}

func (s *tripService) GetTripReviews(ctx context.Context, tripUUID string) ([]response.ReviewResponse, error) {
	if _, err := utils.ParseUUID(tripUUID); err != nil {
		return nil, ErrValidation("invalid trip id", map[string]string{"trip_uuid": "must be a valid UUID"})
	}

	reviews, err := s.repo.Review.ListByTripUUID(ctx, tripUUID)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.String("trip_uuid", tripUUID), zap.Error(err))
		return nil, ErrInternal("could not list reviews", err)
	}

	result := make([]response.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		result = append(result, response.ReviewToResponse(rv))
	}
	return result, nil
}
