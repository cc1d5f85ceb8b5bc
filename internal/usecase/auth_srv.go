package usecase

import (
	"context"
	"fmt"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"
	"trip-booking/internal/dto/response"
	"trip-booking/pkg/mailer"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	cfg  *utils.Config
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewAuthService(cfg *utils.Config, repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) AuthService {
	return &authService{
		cfg:  cfg,
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, ErrValidation("validation failed", errs)
	}

	// 2. Reject duplicate email
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err))
		return nil, ErrInternal("could not register", err)
	}
	if existing != nil {
		return nil, ErrConflict(fmt.Sprintf("email %s is already registered", req.Email))
	}

	// 3. Hash password
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, ErrInternal("could not register", err)
	}

	// 4. Create user; self-registration always yields a customer
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	user.UUID = utils.GenerateUUID().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, ErrInternal("could not register", err)
	}

	s.log.Info("User registered", zap.String("user_uuid", user.UUID))

	return &response.AuthResponse{
		UserUUID: user.UUID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, ErrValidation("validation failed", errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err))
		return nil, ErrInternal("could not log in", err)
	}
	if user == nil {
		// Same message as a wrong password so emails cannot be probed
		return nil, ErrUnauthenticated("invalid email or password")
	}

	if user.IsSuspended {
		return nil, ErrUnauthenticated("account is suspended because of repeated failed logins")
	}
	if !user.IsActive {
		return nil, ErrUnauthenticated("account is deactivated")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		attempts, suspended, recErr := s.repo.User.RecordFailedLogin(ctx, user.ID, s.cfg.Auth.MaxFailedLogins)
		if recErr != nil {
			s.log.Error("Failed to record failed login", zap.Error(recErr))
		} else {
			s.log.Warn("Failed login attempt",
				zap.String("user_uuid", user.UUID),
				zap.Int("attempts", attempts),
				zap.Bool("suspended", suspended))
		}
		if suspended {
			return nil, ErrUnauthenticated("account is suspended because of repeated failed logins")
		}
		return nil, ErrUnauthenticated("invalid email or password")
	}

	if user.FailedLoginAttempts > 0 {
		if err := s.repo.User.ResetFailedLogins(ctx, user.ID); err != nil {
			s.log.Error("Failed to reset login counter", zap.Error(err))
		}
	}

	userUUID, err := utils.ParseUUID(user.UUID)
	if err != nil {
		s.log.Error("Stored user UUID is invalid", zap.String("user_uuid", user.UUID), zap.Error(err))
		return nil, ErrInternal("could not log in", err)
	}

	token, expiresAt, err := utils.GenerateToken(s.cfg.JWT, userUUID, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, ErrInternal("could not log in", err)
	}

	s.log.Info("User logged in", zap.String("user_uuid", user.UUID))

	return &response.AuthResponse{
		UserUUID:  user.UUID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ForgotPassword issues a one-time reset code. It reports success even
// when the email is unknown so the endpoint cannot be used to probe for
// registered addresses.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return ErrValidation("validation failed", errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err))
		return ErrInternal("could not process request", err)
	}
	if user == nil || !user.IsActive {
		return nil
	}

	otp := utils.GenerateOTP(s.cfg.Auth.OTPLength)
	expiresAt := time.Now().Add(time.Duration(s.cfg.Auth.OTPExpiryMinutes) * time.Minute)

	if err := s.repo.PasswordReset.Replace(ctx, user.ID, otp, expiresAt); err != nil {
		s.log.Error("Failed to store reset code", zap.Error(err))
		return ErrInternal("could not process request", err)
	}

	// Mail delivery must not hold up the response
	go func(email, name, code string) {
		subject := "Your password reset code"
		plain := fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.", code, s.cfg.Auth.OTPExpiryMinutes)
		html := fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>.</p><p>It expires in %d minutes.</p>", code, s.cfg.Auth.OTPExpiryMinutes)
		if err := s.mail.Send(email, name, subject, plain, html); err != nil {
			s.log.Error("Failed to send reset email", zap.Error(err))
		}
	}(user.Email, user.Name, otp)

	s.log.Info("Password reset code issued", zap.String("user_uuid", user.UUID))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return ErrValidation("validation failed", errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err))
		return ErrInternal("could not reset password", err)
	}
	if user == nil {
		return ErrUnauthenticated("invalid reset code")
	}

	reset, err := s.repo.PasswordReset.FindValid(ctx, user.ID, req.OTP)
	if err != nil {
		s.log.Error("Failed to check reset code", zap.Error(err))
		return ErrInternal("could not reset password", err)
	}
	if reset == nil {
		return ErrUnauthenticated("invalid reset code")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return ErrInternal("could not reset password", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.log.Error("Failed to update password", zap.Error(err))
		return ErrInternal("could not reset password", err)
	}

	// The code is single use
	if err := s.repo.PasswordReset.DeleteByUserID(ctx, user.ID); err != nil {
		s.log.Error("Failed to purge reset codes", zap.Error(err))
	}
	if user.FailedLoginAttempts > 0 {
		if err := s.repo.User.ResetFailedLogins(ctx, user.ID); err != nil {
			s.log.Error("Failed to reset login counter", zap.Error(err))
		}
	}

	s.log.Info("Password reset", zap.String("user_uuid", user.UUID))
	return nil
}
