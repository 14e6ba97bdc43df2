package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_OverlaysSetVariables(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.test/api")
	t.Setenv("DATABASE_PATH", "/tmp/x.db")
	t.Setenv("DECK_LIMIT", "5")
	t.Setenv("CHAT_POLL_INTERVAL", "7s")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://api.test/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	assert.Equal(t, 5, cfg.DeckLimit)
	assert.Equal(t, 7*time.Second, cfg.ChatPollInterval)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func Test_parseEnv_MalformedValuesLeaveDefaults(t *testing.T) {
	t.Setenv("DECK_LIMIT", "not-a-number")
	t.Setenv("CHAT_POLL_INTERVAL", "-3s")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 20, cfg.DeckLimit)
	assert.Equal(t, 3*time.Second, cfg.ChatPollInterval)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}
