package mindsight

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ──────────────────────────────────────────────
// Configuration
// ──────────────────────────────────────────────

// Config holds the environment-driven settings of a companion deployment.
type Config struct {
	APIKey    string // language-model credential; empty = degraded chat
	Model     string
	MoodFile  string
	Region    string // helpline directory region
	Language  string // display language name (see Languages)
	RedisAddr string // optional; empty = in-memory session store
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment. A missing API key is not an error: the chat feature degrades
// to a visible stub instead of crashing.
func LoadConfig() Config {
	// Best-effort: absence of .env is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		APIKey:    os.Getenv("OPENAI_API_KEY"),
		Model:     envOr("MINDSIGHT_MODEL", "gpt-4o-mini"),
		MoodFile:  envOr("MINDSIGHT_MOOD_FILE", "mood_log.csv"),
		Region:    envOr("MINDSIGHT_REGION", "India"),
		Language:  envOr("MINDSIGHT_LANGUAGE", "English"),
		RedisAddr: os.Getenv("MINDSIGHT_REDIS_ADDR"),
	}
	return cfg
}

// Validate checks everything except the API key (whose absence only
// degrades chat).
func (c Config) Validate() error {
	if c.Model == "" {
		return errors.New("missing model")
	}
	if c.MoodFile == "" {
		return errors.New("missing mood file path")
	}
	if _, ok := Languages[c.Language]; !ok {
		return errors.New("unsupported language: " + c.Language)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
