package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Setenv("TEAMPLAY_DB_FILENAME", "loader.db")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "loader.db", cfg.Database.Filename)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	dbDir := t.TempDir()
	chunkLimit := 2500
	ttl := 15 * time.Minute
	dev := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DBDir:       &dbDir,
		ChunkLimit:  &chunkLimit,
		SessionTTL:  &ttl,
		Development: &dev,
	})
	require.NoError(t, err)

	assert.Equal(t, dbDir, cfg.Database.Dir)
	assert.Equal(t, 2500, cfg.Display.ChunkLimit)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Application.Development)
}

func TestLoader_LoadWithOverrides_InvalidOverrideFails(t *testing.T) {
	chunkLimit := 10

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		ChunkLimit: &chunkLimit,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.chunk_limit")
}

func TestLoader_LoadWithOverrides_NilOverrides(t *testing.T) {
	cfg, err := NewLoader().LoadWithOverrides(nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
