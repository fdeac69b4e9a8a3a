package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, key := range keys {
		t.Setenv(key, "")
	}

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, StorageFile, cfg.StorageBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "groq", cfg.AIProvider)
	assert.Equal(t, 24*time.Hour, cfg.BackupInterval)
	assert.False(t, cfg.IsProduction())
	assert.Error(t, cfg.RequireBot())
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"Production", true},
		{" production ", true},
		{"development", false},
		{"", false},
	}

	for _, tt := range tests {
		cfg := Config{Environment: tt.env}
		assert.Equal(t, tt.want, cfg.IsProduction(), "ENV=%q", tt.env)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("OWNER_TELEGRAM_ID", "424242")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("API_KEY", "secret")
	t.Setenv("BACKUP_INTERVAL", "6h")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.NoError(t, cfg.RequireBot())
	assert.Equal(t, int64(424242), cfg.OwnerTelegramID)
	assert.Equal(t, StorageRedis, cfg.StorageBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 6*time.Hour, cfg.BackupInterval)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without dsn", map[string]string{"STORAGE_BACKEND": "postgres", "DB_DSN": ""}},
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "sqlite"}},
		{"unknown provider", map[string]string{"STORAGE_BACKEND": "file", "AI_PROVIDER": "openrouter"}},
		{"negative backup interval", map[string]string{"STORAGE_BACKEND": "file", "AI_PROVIDER": "groq", "BACKUP_INTERVAL": "-1h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromViper(newViper())
			assert.Error(t, err)
		})
	}
}
