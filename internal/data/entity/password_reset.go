package entity

import (
	"time"
)

type PasswordReset struct {
	BaseSimple
	UserID    int64     `db:"user_id"`
	OTPCode   string    `db:"otp_code"`
	ExpiresAt time.Time `db:"expires_at"`
}
