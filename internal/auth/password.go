package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

var ErrInvalidPassword = errors.New("invalid password")

// HashPassword returns the unsalted hex SHA-256 digest stored in the login table.
// Existing databases depend on this exact value, so no salt is added.
func HashPassword(password string) string {
	h := sha256.Sum256([]byte(password))
	return hex.EncodeToString(h[:])
}

// CheckPassword compares a plaintext password with a stored digest.
func CheckPassword(password, hash string) error {
	if subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(hash)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}
