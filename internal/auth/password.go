// Package auth implements password hashing for user accounts.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	iterations = 100_000
	keyLen     = 32
)

// HashPassword derives a PBKDF2-SHA256 hash with a random salt, stored as
// "salthex:hashhex".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	dk := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(dk), nil
}

// VerifyPassword checks password against a stored "salthex:hashhex" string
// in constant time. Malformed stored values verify as false.
func VerifyPassword(password, stored string) bool {
	saltHex, hashHex, found := strings.Cut(stored, ":")
	if !found {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	dk := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(dk, expected) == 1
}
