package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDevDefaults(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_URL", "")
	t.Setenv("ADDRESS_LISTEN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "unsecure", cfg.JWTSecret)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Contains(t, cfg.DBURL, "foreign_keys(1)")
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.SignupAllowed())
}

func TestLoadProRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.EqualError(t, err, "no secret defined")
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	t.Setenv("ENV", "pro")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProSignupDisabled(t *testing.T) {
	t.Setenv("ENV", "pro")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ENABLE_SIGNUP", "")
	t.Setenv("ADDRESS_LISTEN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SignupAllowed())
	assert.Empty(t, cfg.Addr)
}

func TestApplyDefaultsWithoutSecret(t *testing.T) {
	cfg := &Config{Environment: PRO_ENV}
	require.NoError(t, cfg.ApplyDefaults())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Error(t, cfg.RequireSecret())

	cfg = &Config{DBDriver: "mysql"}
	assert.Error(t, cfg.ApplyDefaults())
}
