// Package credentials implements the password workflow: one-way hashing,
// verification, and the minimum-length policy.
package credentials

import (
	"fmt"

	"bloglist/internal/apperrors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// hashCost matches bcrypt's default work factor of 10.
	hashCost = 10

	minPasswordLength = 3

	policyMessage = "Password doesn't meet the requirements"
)

// Hash derives a salted one-way hash from the plaintext password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares a plaintext password against a stored hash.
func Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// CheckPolicy rejects absent or too-short passwords.
func CheckPolicy(password string) error {
	if len(password) < minPasswordLength {
		return &apperrors.PolicyViolation{Message: policyMessage}
	}
	return nil
}
