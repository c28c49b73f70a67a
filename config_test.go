package mindsight

import "testing"

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MINDSIGHT_MODEL", "")
	t.Setenv("MINDSIGHT_MOOD_FILE", "")
	t.Setenv("MINDSIGHT_REGION", "")
	t.Setenv("MINDSIGHT_LANGUAGE", "")

	cfg := LoadConfig()
	if cfg.Model == "" || cfg.MoodFile != "mood_log.csv" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Language != "English" {
		t.Fatalf("expected English default, got %q", cfg.Language)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	// Missing API key degrades chat, it never fails validation.
	if cfg.APIKey != "" {
		t.Fatalf("expected empty API key, got %q", cfg.APIKey)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MINDSIGHT_MODEL", "gpt-test")
	t.Setenv("MINDSIGHT_MOOD_FILE", "/tmp/m.csv")
	t.Setenv("MINDSIGHT_LANGUAGE", "Hindi")

	cfg := LoadConfig()
	if cfg.Model != "gpt-test" || cfg.MoodFile != "/tmp/m.csv" || cfg.Language != "Hindi" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestConfig_ValidateRejectsUnknownLanguage(t *testing.T) {
	cfg := Config{Model: "m", MoodFile: "f.csv", Language: "Klingon"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}
