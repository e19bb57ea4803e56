package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	// AccessKeyPrefix is prepended to every generated access key.
	AccessKeyPrefix = "ak"
	// accessKeyBytes is the random payload of an access key (48 hex chars).
	accessKeyBytes = 24
	// saltBytes is the per-record salt size (32 hex chars).
	saltBytes = 16
	// sessionTokenBytes gives 256 bits of entropy per session token.
	sessionTokenBytes = 32
)

var randomRead = rand.Read

// HashKey computes the one-way digest of a plaintext access key under a salt.
// The digest is hex(SHA-256(salt || plaintext)) and is deterministic, so a
// stored (hash, salt) pair can be re-verified against a presented key.
func HashKey(plaintext, salt string) string {
	sum := sha256.Sum256([]byte(salt + plaintext))
	return hex.EncodeToString(sum[:])
}

// NewSalt returns a cryptographically random per-record salt.
func NewSalt() (string, error) {
	return randomHex(saltBytes)
}

// GenerateAccessKey returns a new plaintext access key of the form
// "ak-<48 hex chars>". The caller is responsible for hashing it before
// persisting; the plaintext itself is never stored.
func GenerateAccessKey() (string, error) {
	raw, err := randomHex(accessKeyBytes)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", AccessKeyPrefix, raw), nil
}

// GenerateSessionToken returns a high-entropy opaque session token.
func GenerateSessionToken() (string, error) {
	return randomHex(sessionTokenBytes)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := randomRead(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
