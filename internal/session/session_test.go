package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"cyberstudy/portal/internal/models"
)

func testUser() models.User {
	return models.User{
		ID:           "u1",
		Email:        "parent@x.com",
		PasswordHash: "deadbeef",
		Salt:         "cafe",
		ParentName:   "Parent",
		Role:         models.RoleParent,
	}
}

func TestManager_BeginAndCurrent(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), time.Hour, 30*24*time.Hour)
	ctx := context.Background()

	token, state, err := m.Begin(ctx, testUser(), false)
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if state.UserID != "u1" || state.Role != models.RoleParent {
		t.Fatalf("state wrong: %+v", state)
	}

	got, err := m.Current(ctx, token)
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if got.UserID != "u1" || got.ParentName != "Parent" || got.Email != "parent@x.com" {
		t.Fatalf("resolved state wrong: %+v", got)
	}
}

func TestManager_RememberExtendsExpiry(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), time.Hour, 30*24*time.Hour)
	ctx := context.Background()

	_, short, err := m.Begin(ctx, testUser(), false)
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	_, long, err := m.Begin(ctx, testUser(), true)
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}

	if !long.ExpiresAt.After(short.ExpiresAt.Add(24 * time.Hour)) {
		t.Fatalf("remember did not extend expiry: short=%v long=%v", short.ExpiresAt, long.ExpiresAt)
	}
}

func TestManager_ExpiredSessionIsGone(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	m := NewManager(store, -time.Minute, 30*24*time.Hour)
	ctx := context.Background()

	token, _, err := m.Begin(ctx, testUser(), false)
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}

	if _, err := m.Current(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired session, got %v", err)
	}
	// The expired entry is dropped on read.
	if _, err := store.Get(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expired entry still stored: %v", err)
	}
}

func TestManager_EndIsIdempotent(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), time.Hour, 30*24*time.Hour)
	ctx := context.Background()

	token, _, err := m.Begin(ctx, testUser(), false)
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}

	if err := m.End(ctx, token); err != nil {
		t.Fatalf("End error: %v", err)
	}
	if err := m.End(ctx, token); err != nil {
		t.Fatalf("second End error: %v", err)
	}
	if err := m.End(ctx, ""); err != nil {
		t.Fatalf("End with no token error: %v", err)
	}

	if _, err := m.Current(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("session survived End: %v", err)
	}
}

func TestMemoryStore_PurgeExpired(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	_ = store.Put(ctx, "live", models.SessionState{UserID: "u1", ExpiresAt: now.Add(time.Hour)})
	_ = store.Put(ctx, "dead", models.SessionState{UserID: "u2", ExpiresAt: now.Add(-time.Hour)})

	if removed := store.PurgeExpired(now); removed != 1 {
		t.Fatalf("PurgeExpired removed %d, want 1", removed)
	}
	if _, err := store.Get(ctx, "live"); err != nil {
		t.Fatalf("live session purged: %v", err)
	}
	if _, err := store.Get(ctx, "dead"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("dead session kept: %v", err)
	}
}
