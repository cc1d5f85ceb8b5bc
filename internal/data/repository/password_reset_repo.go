package repository

import (
	"context"
	"fmt"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PasswordResetRepository interface {
	// Replace purges any previous codes for the user and stores a new one.
	Replace(ctx context.Context, userID int64, otpCode string, expiresAt time.Time) error
	FindValid(ctx context.Context, userID int64, otpCode string) (*entity.PasswordReset, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type passwordResetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPasswordResetRepository(db database.PgxIface, log *zap.Logger) PasswordResetRepository {
	return &passwordResetRepository{
		db:  db,
		log: log.With(zap.String("repository", "password_reset")),
	}
}

func (r *passwordResetRepository) Replace(ctx context.Context, userID int64, otpCode string, expiresAt time.Time) error {
	if err := r.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	query := `
		INSERT INTO password_resets (user_id, otp_code, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := r.db.Exec(ctx, query, userID, otpCode, expiresAt); err != nil {
		r.log.Error("Failed to store password reset code",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("store password reset code for user %d: %w", userID, err)
	}

	return nil
}

func (r *passwordResetRepository) FindValid(ctx context.Context, userID int64, otpCode string) (*entity.PasswordReset, error) {
	query := `
		SELECT id, user_id, otp_code, expires_at, created_at
		FROM password_resets
		WHERE user_id = $1 AND otp_code = $2 AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var reset entity.PasswordReset
	err := r.db.QueryRow(ctx, query, userID, otpCode).Scan(
		&reset.ID,
		&reset.UserID,
		&reset.OTPCode,
		&reset.ExpiresAt,
		&reset.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find password reset code",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find password reset code for user %d: %w", userID, err)
	}

	return &reset, nil
}

func (r *passwordResetRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	query := `DELETE FROM password_resets WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to delete password reset codes",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("delete password reset codes for user %d: %w", userID, err)
	}

	return nil
}
