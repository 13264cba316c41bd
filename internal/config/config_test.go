package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "data/users.json", cfg.Store.Path)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, "cyberstudy_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.DefaultTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.RememberTTL)
	assert.True(t, cfg.Demo.Seed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CYBERSTUDY_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_EnvOverridesNestedKeys(t *testing.T) {
	t.Setenv("CYBERSTUDY_DEMO_SEED", "false")
	t.Setenv("CYBERSTUDY_SESSION_BACKEND", "redis")
	t.Setenv("CYBERSTUDY_SESSION_DEFAULTTTL", "2h")
	t.Setenv("CYBERSTUDY_HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	// demo.seed gates provisioning of well-known credentials; the env
	// switch must actually turn it off.
	assert.False(t, cfg.Demo.Seed)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, 2*time.Hour, cfg.Session.DefaultTTL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}
