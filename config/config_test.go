package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"DATABASE_URL":        "postgres://league@localhost/league?sslmode=disable",
		"JWT_SECRET_KEY":      "secret",
		"ADMIN_PASSWORD_HASH": "$2a$10$abcdefghijklmnopqrstuu",
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.R2.Enabled())
}

func TestFromLookup_Overrides(t *testing.T) {
	env := baseEnv()
	env["SERVER_PORT"] = "9000"
	env["LOG_LEVEL"] = "debug"
	env["CORS_ALLOWED_ORIGINS"] = "https://admin.example.com, https://example.com,"
	env["R2_ACCOUNT_ID"] = "acc"
	env["R2_ACCESS_KEY_ID"] = "key"
	env["R2_SECRET_ACCESS_KEY"] = "secret"
	env["R2_BUCKET_NAME"] = "logos"
	env["R2_PUBLIC_BASE_URL"] = "https://cdn.example.com"

	cfg, err := fromLookup(lookupFrom(env))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.ServerPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://admin.example.com", "https://example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.R2.Enabled())
}

func TestFromLookup_Errors(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET_KEY", "ADMIN_PASSWORD_HASH"} {
		env := baseEnv()
		delete(env, key)
		_, err := fromLookup(lookupFrom(env))
		assert.ErrorContains(t, err, key)
	}

	env := baseEnv()
	env["SERVER_PORT"] = "70000"
	_, err := fromLookup(lookupFrom(env))
	assert.Error(t, err)

	env = baseEnv()
	env["LOG_LEVEL"] = "loud"
	_, err = fromLookup(lookupFrom(env))
	assert.Error(t, err)

	for _, raw := range []string{",", " , ,", ", ,\t,"} {
		env = baseEnv()
		env["CORS_ALLOWED_ORIGINS"] = raw
		_, err = fromLookup(lookupFrom(env))
		assert.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS", "value %q", raw)
	}
}
