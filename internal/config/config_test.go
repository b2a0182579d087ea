package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromaEnergia/api-fichas/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_SSL_MODE_DISABLE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com,https://b.com")
	t.Setenv("FICHAS_WEBHOOK_URL", "https://hooks.exemplo.com/fichas")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.interno", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.DB.SSLModeDisable)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://hooks.exemplo.com/fichas", cfg.Webhook.URL)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	var cfg config.Config
	cfg.DB.Host = "h"
	cfg.DB.User = "u"
	cfg.DB.Password = "p"
	cfg.DB.Name = "n"
	cfg.DB.Port = 5432

	assert.Equal(t, "host=h user=u password=p dbname=n port=5432", cfg.DSN())

	cfg.DB.SSLModeDisable = true
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable", cfg.DSN())
}
