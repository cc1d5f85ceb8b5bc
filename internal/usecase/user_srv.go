package usecase

import (
	"context"
	"time"

	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/dto/response"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	DeactivateAccount(ctx context.Context, userID int64) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, ErrInternal("could not load profile", err)
	}
	if user == nil {
		return nil, ErrNotFound("user not found")
	}

	resp := response.ProfileToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, ErrValidation("validation failed", errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, ErrInternal("could not update profile", err)
	}
	if user == nil {
		return nil, ErrNotFound("user not found")
	}

	user.Name = req.Name
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, ErrInternal("could not update profile", err)
	}

	s.log.Info("Profile updated", zap.String("user_uuid", user.UUID))

	resp := response.ProfileToResponse(user)
	return &resp, nil
}

func (s *userService) DeactivateAccount(ctx context.Context, userID int64) error {
	// 1. Load the account
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		return ErrInternal("could not deactivate account", err)
	}
	if user == nil {
		return ErrNotFound("user not found")
	}

	// 2. Deactivating twice is an error, not a no-op
	if !user.IsActive {
		return ErrConflict("account is already deactivated")
	}

	// 3. Flip the flag; login and the auth middleware reject inactive accounts
	user.IsActive = false
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to deactivate user", zap.Int64("user_id", userID), zap.Error(err))
		return ErrInternal("could not deactivate account", err)
	}

	s.log.Info("Account deactivated", zap.String("user_uuid", user.UUID))
	return nil
}
