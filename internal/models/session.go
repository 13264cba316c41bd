package models

import "time"

// SessionState is the server-side record behind one session cookie. It never
// carries the password hash or salt, only the identity resolved at sign-in.
type SessionState struct {
	UserID     string    `json:"user_id"`
	ParentName string    `json:"parent_name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s SessionState) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
