// internal/config/config.go
//
// Environment-driven configuration.
//
// Everything comes from the process environment; main seeds it from a
// .env file first. Defaults make the game playable with nothing set.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting.
type Config struct {
	// WordsFile points at a newline-delimited word list. Empty means the
	// embedded default list.
	WordsFile string `env:"RUSTLE_WORDS_FILE"`

	// Answer forces the target word instead of drawing one, mainly for
	// testing. It takes precedence over Daily and Seed.
	Answer string `env:"RUSTLE_ANSWER"`

	// Daily picks the target from today's date, so everyone playing the
	// same list sees the same puzzle on a given day.
	Daily     bool   `env:"RUSTLE_DAILY" envDefault:"false"`
	DailySalt string `env:"RUSTLE_DAILY_SALT" envDefault:"local_dev_salt"`

	// Seed fixes the random draw; 0 means draw a fresh seed.
	Seed int64 `env:"RUSTLE_SEED" envDefault:"0"`

	// MaxTries is the number of accepted guesses before the game is lost.
	MaxTries int `env:"RUSTLE_MAX_TRIES" envDefault:"6"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFile receives in-session logs. Empty disables them; stdout
	// belongs to the board while the screen is up.
	LogFile string `env:"RUSTLE_LOG_FILE"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTries < 1 {
		return Config{}, fmt.Errorf("config: RUSTLE_MAX_TRIES must be at least 1, got %d", cfg.MaxTries)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
