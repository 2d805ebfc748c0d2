package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrEmptyKeyMaterial = errors.New("crypto: symmetric key material must not be empty")

// SymmetricKey returns the UTF-8 bytes of the configured secret for use as an HMAC key.
func SymmetricKey(material string) ([]byte, error) {
	if material == "" {
		return nil, ErrEmptyKeyMaterial
	}
	return []byte(material), nil
}

// GenerateSecret returns n random bytes encoded as unpadded base64url, ready to be used as key material.
func GenerateSecret(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("crypto: secret length must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto: reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
