package config

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog.Logger configured from the environment.
// Production logs JSON to stdout; everything else gets the console writer.
func NewLogger(cfg *Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}

	if cfg.Environment == "production" {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()
}
