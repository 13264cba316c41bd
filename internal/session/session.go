package session

import (
	"context"
	"errors"
	"time"

	"cyberstudy/portal/internal/models"
	"cyberstudy/portal/internal/security"
)

var ErrSessionNotFound = errors.New("session not found")

// Store maps an opaque session token to its server-side state. Implementations
// may or may not evict expired entries themselves; Manager re-checks expiry on
// every read either way.
type Store interface {
	Put(ctx context.Context, token string, state models.SessionState) error
	Get(ctx context.Context, token string) (models.SessionState, error)
	Delete(ctx context.Context, token string) error
}

// Manager issues, resolves and ends sessions. One session represents one
// authenticated principal for the lifetime of a browser session.
type Manager struct {
	store       Store
	defaultTTL  time.Duration
	rememberTTL time.Duration
}

func NewManager(store Store, defaultTTL, rememberTTL time.Duration) *Manager {
	return &Manager{
		store:       store,
		defaultTTL:  defaultTTL,
		rememberTTL: rememberTTL,
	}
}

// Begin creates a session for a user whose credentials were already verified.
// The state carries identity only, never the password hash or salt. With
// remember set the session lives for the long remember window.
func (m *Manager) Begin(ctx context.Context, user models.User, remember bool) (string, models.SessionState, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return "", models.SessionState{}, err
	}

	ttl := m.defaultTTL
	if remember {
		ttl = m.rememberTTL
	}

	state := models.SessionState{
		UserID:     user.ID,
		ParentName: user.ParentName,
		Email:      user.Email,
		Role:       user.EffectiveRole(),
		ExpiresAt:  time.Now().UTC().Add(ttl),
	}

	if err := m.store.Put(ctx, token, state); err != nil {
		return "", models.SessionState{}, err
	}
	return token, state, nil
}

// Current resolves a presented token. Unknown and expired tokens look the
// same to the caller; an expired entry is dropped on the way out.
func (m *Manager) Current(ctx context.Context, token string) (models.SessionState, error) {
	if token == "" {
		return models.SessionState{}, ErrSessionNotFound
	}

	state, err := m.store.Get(ctx, token)
	if err != nil {
		return models.SessionState{}, err
	}

	if state.Expired(time.Now().UTC()) {
		_ = m.store.Delete(ctx, token)
		return models.SessionState{}, ErrSessionNotFound
	}
	return state, nil
}

// End destroys the session. Ending an unknown or already-ended session is
// not an error; logout is idempotent.
func (m *Manager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

func (m *Manager) RememberTTL() time.Duration {
	return m.rememberTTL
}
