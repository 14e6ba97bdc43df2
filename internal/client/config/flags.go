package config

import (
	"flag"
	"os"
	"time"

	"github.com/IrtizaAhmed131198/dating-app/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   path of the local sqlite database
//	-n int      deck fetch size
//	-i int      chat poll interval in seconds
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so it does not interfere with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	deckLimit := fs.Int("n", cfg.DeckLimit, "deck fetch size")
	pollInterval := fs.Int("i", int(cfg.ChatPollInterval.Seconds()), "chat poll interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *deckLimit > 0 {
		cfg.DeckLimit = *deckLimit
	}
	if *pollInterval > 0 {
		cfg.ChatPollInterval = time.Duration(*pollInterval) * time.Second
	}
}
