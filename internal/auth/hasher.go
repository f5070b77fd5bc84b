package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// PasswordHasher derives and verifies salted password digests. Keeping it
// behind an interface lets the auth service be tested without touching the
// real algorithm.
type PasswordHasher interface {
	// GenerateSalt returns a fresh random salt encoded as printable text.
	GenerateSalt() (string, error)
	// Hash returns the digest of password combined with salt. Deterministic:
	// same inputs always produce the same output.
	Hash(password, salt string) string
	// Verify recomputes the candidate's digest with the stored salt and
	// compares it against the stored hash.
	Verify(storedHash, storedSalt, candidate string) bool
}

// SHA256Hasher hashes the concatenation of password and salt with SHA-256,
// hex encoded. Not memory-hard; a deliberately slow KDF would resist offline
// brute force better, but this matches the stored-credential format the
// service has always used.
type SHA256Hasher struct{}

var _ PasswordHasher = SHA256Hasher{}

// GenerateSalt returns 16 bytes from the system CSPRNG as a 32-char hex string.
func (SHA256Hasher) GenerateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash returns hex(sha256(password + salt)).
func (SHA256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether candidate hashes to storedHash under storedSalt.
// The comparison is constant time.
func (h SHA256Hasher) Verify(storedHash, storedSalt, candidate string) bool {
	computed := h.Hash(candidate, storedSalt)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(computed)) == 1
}
