// Package security holds the password and token primitives. Hashes are
// stored as "salt:digest" with both halves hex-encoded.
package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 120000
	saltBytes        = 16
	digestBytes      = 64
	tokenBytes       = 32
)

func hashWithSalt(password string, salt []byte) string {
	digest := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, digestBytes, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(digest)
}

func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hashWithSalt(password, salt), nil
}

// VerifyPassword re-derives the digest with the stored salt and compares
// in constant time. A malformed stored value is simply a mismatch.
func VerifyPassword(password, stored string) bool {
	saltHex, digestHex, ok := strings.Cut(stored, ":")
	if !ok || saltHex == "" || digestHex == "" {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(want), sha512.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// NewSessionToken returns a 256-bit random token. The token is used
// verbatim as the session map key; it is never derived from user input.
func NewSessionToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
