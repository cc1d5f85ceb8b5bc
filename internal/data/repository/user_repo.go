package repository

import (
	"context"
	"fmt"

	"trip-booking/internal/data/entity"
	"trip-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUUID(ctx context.Context, uuid string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// Lockout state. RecordFailedLogin bumps the counter and flips the
	// suspension flag in the same statement once the threshold is hit.
	RecordFailedLogin(ctx context.Context, id int64, threshold int) (attempts int, suspended bool, err error)
	ResetFailedLogins(ctx context.Context, id int64) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, uuid, name, email, password, phone, role, failed_login_attempts, is_suspended, is_active, created_at, updated_at`

func (r *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.UUID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.FailedLoginAttempts,
		&user.IsSuspended,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (uuid, name, email, password, phone, role, failed_login_attempts, is_suspended, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		user.UUID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
		user.FailedLoginAttempts,
		user.IsSuspended,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find user by ID", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}
	return user, nil
}

func (r *userRepository) FindByUUID(ctx context.Context, uuid string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, uuid))
	if err != nil {
		r.log.Error("Failed to find user by UUID", zap.Error(err), zap.String("user_uuid", uuid))
		return nil, fmt.Errorf("find user by UUID %s: %w", uuid, err)
	}
	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		r.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.IsActive,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", user.ID)
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to update password", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("update password for user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

func (r *userRepository) RecordFailedLogin(ctx context.Context, id int64, threshold int) (int, bool, error) {
	// Counter and suspension flip in one statement so the invariant
	// "suspended exactly at the threshold" holds under concurrent attempts.
	query := `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1,
		    is_suspended = (failed_login_attempts + 1 >= $2),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING failed_login_attempts, is_suspended
	`

	var attempts int
	var suspended bool
	err := r.db.QueryRow(ctx, query, id, threshold).Scan(&attempts, &suspended)
	if err != nil {
		r.log.Error("Failed to record failed login", zap.Error(err), zap.Int64("user_id", id))
		return 0, false, fmt.Errorf("record failed login for user %d: %w", id, err)
	}

	return attempts, suspended, nil
}

func (r *userRepository) ResetFailedLogins(ctx context.Context, id int64) error {
	query := `UPDATE users SET failed_login_attempts = 0, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to reset failed logins", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("reset failed logins for user %d: %w", id, err)
	}

	return nil
}
