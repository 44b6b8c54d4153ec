package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "content_library", cfg.ContentDir)
	assert.Equal(t, "temp_audio", cfg.TempAudioDir)
	assert.Equal(t, 250, cfg.HistoryLimit)
	assert.Equal(t, 10*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HISTORY_LIMIT", "10")
	t.Setenv("TRANSLATE_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, 3*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("HISTORY_LIMIT", "not-a-number")
	t.Setenv("TRANSLATE_TIMEOUT", "soon")
	t.Setenv("REDIS_TLS", "maybe")

	cfg := Load()

	assert.Equal(t, 250, cfg.HistoryLimit)
	assert.Equal(t, 10*time.Second, cfg.TranslateTimeout)
	assert.False(t, cfg.RedisTLS)
}
