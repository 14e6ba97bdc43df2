// Package config holds runtime settings for the dating-app CLI, layered
// from defaults, environment, an optional JSON file and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - DatabasePath: path of the local sqlite file (credential + chat cache).
//   - DeckLimit: how many candidates one deck fetch requests.
//   - ChatPollInterval: cadence of the conversation polling loop.
//   - HTTPTimeout: per-request timeout of the API client.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL       string
	DatabasePath     string
	DeckLimit        int
	ChatPollInterval time.Duration
	HTTPTimeout      time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "dating.db"
	c.DeckLimit = 20
	c.ChatPollInterval = 3 * time.Second
	c.HTTPTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file (if
// given) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
