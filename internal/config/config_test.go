package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "house_rental.db", cfg.DBPath)
	assert.Equal(t, "$", cfg.CurrencySymbol)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("RENTAL_DB_PATH", "/tmp/rental_test.db")
	t.Setenv("CURRENCY_SYMBOL", "KSh")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "/tmp/rental_test.db", cfg.DBPath)
	assert.Equal(t, "KSh", cfg.CurrencySymbol)
}
