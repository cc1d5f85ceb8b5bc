package usecase

import (
	"context"
	"fmt"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type ComplaintService interface {
	SubmitComplaint(ctx context.Context, userID int64, req *request.SubmitComplaintRequest) error
}

type complaintService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewComplaintService(repo *repository.Repository, log *zap.Logger) ComplaintService {
	return &complaintService{
		repo: repo,
		log:  log.With(zap.String("service", "complaint")),
	}
}

func (s *complaintService) SubmitComplaint(ctx context.Context, userID int64, req *request.SubmitComplaintRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit complaint validation failed", zap.Any("errors", errs))
		return ErrValidation("validation failed", errs)
	}

	tripID, found, err := s.repo.Trip.ResolveID(ctx, req.TripUUID)
	if err != nil {
		s.log.Error("Failed to resolve trip", zap.String("trip_uuid", req.TripUUID), zap.Error(err))
		return ErrInternal("could not submit complaint", err)
	}
	if !found {
		return ErrNotFound(fmt.Sprintf("trip %s not found", req.TripUUID))
	}

	complaint := &entity.Complaint{
		UserID:      userID,
		TripID:      tripID,
		Subject:     req.Subject,
		Description: req.Description,
	}
	complaint.CreatedAt = time.Now()

	if err := s.repo.Complaint.Create(ctx, complaint); err != nil {
		s.log.Error("Failed to create complaint", zap.Error(err))
		return ErrInternal("could not submit complaint", err)
	}

	s.log.Info("Complaint submitted", zap.String("trip_uuid", req.TripUUID), zap.Int64("user_id", userID))
	return nil
}
