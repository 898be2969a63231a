package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "DATABASE_URL", "DATABASE_NAME", "FRONTEND_URL", "REQUEST_TIMEOUT", "AUDIO_BUCKET", "AUDIO_PREFIX", "AWS_REGION", "APP_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://example.com", cfg.FrontendURL)
	assert.Equal(t, "Revelia.life", cfg.AppName)
	assert.False(t, cfg.Database.Configured())
	assert.Empty(t, cfg.Audio.Bucket)
	assert.Equal(t, "audio/", cfg.Audio.Prefix)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "revelia")
	t.Setenv("FRONTEND_URL", "https://revelia.life")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("AUDIO_BUCKET", "dream-audio")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.Configured())
	assert.Equal(t, "revelia", cfg.Database.Name)
	assert.Equal(t, "https://revelia.life", cfg.FrontendURL)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "dream-audio", cfg.Audio.Bucket)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}
