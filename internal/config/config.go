// internal/config/config.go
//
// Runtime configuration, read from the environment after an optional
// .env file has been loaded.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the game process.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	WordsPackFile   string `env:"WORDS_PACK_FILE"`
	WordsEasyFile   string `env:"WORDS_EASY_FILE"`
	WordsNormalFile string `env:"WORDS_NORMAL_FILE"`
	WordsHardFile   string `env:"WORDS_HARD_FILE"`

	// DailySalt switches word selection to the date-seeded picker.
	DailySalt string `env:"HANGMAN_DAILY_SALT"`

	BannerEveryFrame bool `env:"HANGMAN_BANNER_EVERY_FRAME" envDefault:"false"`
	ClearScreen      bool `env:"HANGMAN_CLEAR_SCREEN" envDefault:"true"`
	Replay           bool `env:"HANGMAN_REPLAY" envDefault:"true"`
}

// Load reads .env files (missing ones are ignored) and parses the environment.
func Load(dotenv ...string) (Config, error) {
	_ = godotenv.Load(dotenv...)
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}
