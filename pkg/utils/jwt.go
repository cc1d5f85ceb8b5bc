package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims carries the public user identifier and role. The internal
// surrogate key is resolved server-side and never embedded in the token.
type TokenClaims struct {
	UserUUID string `json:"user_uuid"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(cfg JWTConfig, userUUID uuid.UUID, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.ExpiryHours) * time.Hour)

	claims := TokenClaims{
		UserUUID: userUUID.String(),
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func ParseToken(cfg JWTConfig, tokenStr string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if _, err := uuid.Parse(claims.UserUUID); err != nil {
		return nil, fmt.Errorf("invalid user uuid in token: %w", err)
	}

	return claims, nil
}
