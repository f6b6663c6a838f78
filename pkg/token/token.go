// Package token generates opaque bearer secrets and the digests stored in their place.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// DefaultLength is the default secret length in bytes.
const DefaultLength = 32

// Generate returns a base64 RawURL encoded secret of DefaultLength random bytes.
func Generate() (string, error) {
	return GenerateWithLength(DefaultLength)
}

// GenerateWithLength returns a base64 RawURL encoded secret of length random bytes.
func GenerateWithLength(length int) (string, error) {
	const op = "token.GenerateWithLength"

	if length <= 0 {
		return "", fmt.Errorf("%s: invalid length %d", op, length)
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%s: failed to read random bytes: %w", op, err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash returns the hex encoded SHA-256 digest of secret.
func Hash(secret string) string {
	h := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(h[:])
}

// Verify reports whether secret hashes to expectedHash, in constant time.
func Verify(secret, expectedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(secret)), []byte(expectedHash)) == 1
}
