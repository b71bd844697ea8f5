package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concordlib/concord/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Setenv("CONCORD_TOKEN", "test-token")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.Token)
	assert.Equal(t, "https://api.concord.chat/v1", cfg.BaseURL)
	assert.Equal(t, ":8080", cfg.IngestAddress)
	assert.Empty(t, cfg.Guilds)
}

func TestNew_MissingToken(t *testing.T) {
	// Setenv registers the restore; the variable must be absent, not empty,
	// for the required check to trip.
	t.Setenv("CONCORD_TOKEN", "")
	require.NoError(t, os.Unsetenv("CONCORD_TOKEN"))

	_, err := New()

	require.Error(t, err)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("CONCORD_TOKEN", "test-token")
	t.Setenv("CONCORD_BASE_URL", "http://localhost:8081/v1")
	t.Setenv("CONCORD_INGEST_ADDRESS", ":9090")
	t.Setenv("CONCORD_GUILDS", "900,901")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081/v1", cfg.BaseURL)
	assert.Equal(t, ":9090", cfg.IngestAddress)
	assert.Equal(t, []domain.Snowflake{900, 901}, cfg.Guilds)
}
