package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.App.Port)
	}
	if cfg.Ai.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q", cfg.Ai.EmbeddingModel)
	}
	if cfg.Ai.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q", cfg.Ai.ChatModel)
	}
	if cfg.Ai.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Ai.Temperature)
	}
	if cfg.Ai.MaxTokens != 200 {
		t.Errorf("MaxTokens = %d, want 200", cfg.Ai.MaxTokens)
	}
	if cfg.Ai.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.Ai.TopK)
	}
	if cfg.Ai.RelevanceThreshold != 0.1 {
		t.Errorf("RelevanceThreshold = %v, want 0.1", cfg.Ai.RelevanceThreshold)
	}
	if cfg.Ai.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.Ai.RequestTimeout)
	}
}

func TestValidateEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/kb")
	t.Setenv("RELEVANCE_THRESHOLD", "0.25")

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Ai.RelevanceThreshold != 0.25 {
		t.Errorf("RelevanceThreshold = %v, want 0.25", cfg.Ai.RelevanceThreshold)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/kb")

	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing OPENAI_API_KEY")
	}
}
