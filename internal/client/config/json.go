package config

import (
	"encoding/json"
	"os"

	"github.com/IrtizaAhmed131198/dating-app/internal/flagx"
	"github.com/IrtizaAhmed131198/dating-app/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be given as strings like "3s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	DatabasePath     string         `json:"database_path"`
	DeckLimit        int            `json:"deck_limit"`
	ChatPollInterval timex.Duration `json:"chat_poll_interval"`
	HTTPTimeout      timex.Duration `json:"http_timeout"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. When no flag is present nothing is loaded. Zero-valued
// JSON fields leave the current value untouched. Panics on read or
// unmarshal errors so a broken config file fails loudly at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DeckLimit > 0 {
		cfg.DeckLimit = jc.DeckLimit
	}
	if jc.ChatPollInterval.Duration > 0 {
		cfg.ChatPollInterval = jc.ChatPollInterval.Duration
	}
	if jc.HTTPTimeout.Duration > 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
