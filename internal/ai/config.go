package ai

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. An empty API key disables
// generation entirely and the scene runs on canned phrases.
type Config struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	Timeout int    `env:"GEMINI_TIMEOUT_SECONDS" envDefault:"10"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse ai config: %w", err)
	}
	return cfg, nil
}

// Enabled reports whether a client can be constructed from this config.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}
