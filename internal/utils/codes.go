package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewVerificationCode — ровно 6 десятичных цифр, равномерно из [100000, 999999],
// источник crypto/rand.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
