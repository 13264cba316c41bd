package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewSessionToken returns an opaque token for the session cookie. The token
// carries no claims; all session state lives server-side keyed by this value.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
