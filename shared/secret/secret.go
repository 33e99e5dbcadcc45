package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	digits = "0123456789"
)

var (
	ErrMismatch = errors.New("secret does not match")
	ErrEmpty    = errors.New("secret cannot be empty")
)

// NewNumericCode returns a uniformly random code of length decimal digits.
func NewNumericCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	var builder strings.Builder
	builder.Grow(length)

	limit := big.NewInt(int64(len(digits)))

	for range length {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}

		builder.WriteByte(digits[n.Int64()])
	}

	return builder.String(), nil
}

// Hash generates a bcrypt hash of the secret
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmpty
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(bytes), nil
}

// Verify checks if the provided secret matches the hash
func Verify(secret, hash string) error {
	if secret == "" || hash == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}

		return fmt.Errorf("failed to verify secret: %w", err)
	}

	return nil
}
