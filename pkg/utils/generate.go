package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== OTP ====================

// GenerateOTP creates a numeric OTP of specified length
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	otp := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			otp += "0"
			continue
		}
		otp += fmt.Sprintf("%d", n.Int64())
	}

	return otp
}

// ==================== QUERY PARAMS ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
