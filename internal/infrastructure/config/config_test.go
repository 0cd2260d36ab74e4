package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "travelledger", cfg.MongoDB)
	assert.Equal(t, 60*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 10, cfg.FeedSize)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, "Travel Ledger Summary", cfg.SpreadsheetTitle)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DB", "ledger_test")
	t.Setenv("REFRESH_INTERVAL", "120")
	t.Setenv("FEED_SIZE", "25")
	t.Setenv("POSTGRES_DSN", "host=localhost user=ledger dbname=refdata")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "ledger_test", cfg.MongoDB)
	assert.Equal(t, 2*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 25, cfg.FeedSize)
	assert.Equal(t, "host=localhost user=ledger dbname=refdata", cfg.PostgresDSN)
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("FEED_SIZE", "plenty")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.FeedSize)
}
