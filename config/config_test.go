package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxArticles != 5 {
		t.Fatalf("expected default max articles 5, got %d", cfg.MaxArticles)
	}
	if cfg.DaysBack != 7 {
		t.Fatalf("expected default days back 7, got %d", cfg.DaysBack)
	}
	if cfg.MinRequestInterval != 5*time.Second {
		t.Fatalf("expected default request interval 5s, got %s", cfg.MinRequestInterval)
	}
	if cfg.LLMProvider != "deepseek" {
		t.Fatalf("expected default provider deepseek, got %s", cfg.LLMProvider)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAX_ARTICLES", "12")
	t.Setenv("DAYS_BACK", "3")
	t.Setenv("MIN_REQUEST_INTERVAL", "250ms")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test-override-key")

	cfg := DefaultConfig()

	if cfg.MaxArticles != 12 {
		t.Fatalf("expected max articles 12, got %d", cfg.MaxArticles)
	}
	if cfg.DaysBack != 3 {
		t.Fatalf("expected days back 3, got %d", cfg.DaysBack)
	}
	if cfg.MinRequestInterval != 250*time.Millisecond {
		t.Fatalf("expected request interval 250ms, got %s", cfg.MinRequestInterval)
	}
	if cfg.LLMAPIKey() != "sk-test-override-key" {
		t.Fatalf("expected openai key to be selected, got %q", cfg.LLMAPIKey())
	}
}

func TestValidateKeys(t *testing.T) {
	cfg := &Config{LLMProvider: "deepseek"}
	if err := cfg.ValidateKeys(); err == nil {
		t.Fatalf("expected error for missing keys")
	}

	cfg.DeepSeekAPIKey = "short"
	cfg.NewsAPIKey = "also-short"
	if err := cfg.ValidateKeys(); err == nil {
		t.Fatalf("expected error for placeholder keys")
	}

	cfg.DeepSeekAPIKey = "sk-aaaaaaaaaaaaaaaa"
	cfg.NewsAPIKey = "news-aaaaaaaaaaaaaaaa"
	if err := cfg.ValidateKeys(); err != nil {
		t.Fatalf("ValidateKeys: %v", err)
	}
}
