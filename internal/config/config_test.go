package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Discovery.MinCandidates)
	assert.Equal(t, 15, cfg.Discovery.TargetCandidates)
	assert.Equal(t, 8, cfg.Discovery.MaxQueries)
	assert.Equal(t, 90, cfg.Discovery.RequestTimeoutSecs)
	assert.Equal(t, []string{"duckduckgo", "bing", "startpage"}, cfg.Search.Engines)
	assert.Equal(t, 6, cfg.Search.Workers)
	assert.Equal(t, 3, cfg.Contacts.MaxContacts)
	assert.Equal(t, 30, cfg.Results.TTLMins)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Anthropic.Key)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PROSPECT_DISCOVERY_MIN_CANDIDATES", "9")
	t.Setenv("PROSPECT_SEARCH_ENGINE_RPS", "2.5")
	t.Setenv("PROSPECT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Discovery.MinCandidates)
	assert.Equal(t, 2.5, cfg.Search.EngineRPS)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRequestTimeout(t *testing.T) {
	assert.Equal(t, 90*time.Second, DiscoveryConfig{}.RequestTimeout())
	assert.Equal(t, 90*time.Second, DiscoveryConfig{RequestTimeoutSecs: -1}.RequestTimeout())
	assert.Equal(t, 30*time.Second, DiscoveryConfig{RequestTimeoutSecs: 30}.RequestTimeout())
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.Error(t, InitLogger(LogConfig{Level: "shouting"}))
}
