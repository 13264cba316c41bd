package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const saltLen = 16

// HashPassword derives a salted digest from a plaintext password. The salt is
// 16 random bytes rendered as hex; the hash is SHA-256 over plaintext||salt.
// A general-purpose digest is adequate for the demo-portal scope; anything
// holding real accounts should move to a slow KDF instead.
func HashPassword(password string) (hash string, salt string, err error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)

	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:]), salt, nil
}

// VerifyPassword recomputes the digest for the stored salt and compares it to
// the stored hash in constant time.
func VerifyPassword(password string, hash string, salt string) bool {
	sum := sha256.Sum256([]byte(password + salt))
	computed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
